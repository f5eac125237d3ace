package github

import (
	"os"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// DefaultTokenEnv is the variable read when the configuration names none.
const DefaultTokenEnv = "GITHUB_TOKEN"

// Config identifies the repository to read and the token to read it with.
type Config struct {
	Owner string
	Repo  string

	// Token is empty for anonymous access.
	Token string
}

// ConfigFromRepository builds a Config, resolving the token through getenv.
// A nil getenv reads the process environment.
func ConfigFromRepository(repo domain.RepositoryConfig, getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}

	env := repo.TokenEnv
	if env == "" {
		env = DefaultTokenEnv
	}

	return Config{
		Owner: repo.Owner,
		Repo:  repo.Name,
		Token: getenv(env),
	}
}

// Validate checks that a repository is named.
func (c Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return ErrMissingRepository
	}
	return nil
}

// Authenticated reports whether a token is configured.
func (c Config) Authenticated() bool {
	return c.Token != ""
}
