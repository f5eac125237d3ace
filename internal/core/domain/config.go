package domain

import (
	"fmt"
	"strings"
)

// Artifact identifies one output shape of a run.
type Artifact string

// Supported artifacts.
const (
	ArtifactChangelog    Artifact = "changelog"
	ArtifactMarketplace  Artifact = "marketplace"
	ArtifactReleaseNotes Artifact = "release-notes"
	ArtifactAddons       Artifact = "addons"
)

// AllArtifacts returns every artifact in rendering order.
func AllArtifacts() []Artifact {
	return []Artifact{ArtifactChangelog, ArtifactMarketplace, ArtifactReleaseNotes, ArtifactAddons}
}

// RepositoryConfig points at the tracker repository.
type RepositoryConfig struct {
	Owner string `toml:"owner" yaml:"owner"`
	Name  string `toml:"name" yaml:"name"`

	// TokenEnv names the environment variable holding an API token.
	// An unset variable means anonymous access.
	TokenEnv string `toml:"token_env" yaml:"token_env"`
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Directory string `toml:"directory" yaml:"directory"`
}

// PublishConfig holds the text and link settings used by the renderers.
// URL templates accept the {tag} and {bundle} placeholders.
type PublishConfig struct {
	Distribution         string   `toml:"distribution" yaml:"distribution"`
	BundlePrefix         string   `toml:"bundle_prefix" yaml:"bundle_prefix"`
	DocsURL              string   `toml:"docs_url" yaml:"docs_url"`
	DownloadURL          string   `toml:"download_url" yaml:"download_url"`
	InfrastructureModule string   `toml:"infrastructure_module" yaml:"infrastructure_module"`
	AdministrativeLabels []string `toml:"administrative_labels" yaml:"administrative_labels"`
	BundlesDirectory     string   `toml:"bundles_directory" yaml:"bundles_directory"`
	AddonIDPrefix        string   `toml:"addon_id_prefix" yaml:"addon_id_prefix"`
	AddonAuthor          string   `toml:"addon_author" yaml:"addon_author"`
}

// MilestoneRewrite replaces a retired milestone prefix with its successor.
type MilestoneRewrite struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

// MilestoneCollapse rolls abandoned early versions into one shipped version.
type MilestoneCollapse struct {
	Versions []string `toml:"versions" yaml:"versions"`
	Into     string   `toml:"into" yaml:"into"`
}

// MilestoneConfig is the normalisation table applied to milestone titles.
type MilestoneConfig struct {
	Rewrites []MilestoneRewrite  `toml:"rewrites" yaml:"rewrites"`
	Collapse []MilestoneCollapse `toml:"collapse" yaml:"collapse"`
}

// ReleaseConfig is the full static configuration of the release tooling.
type ReleaseConfig struct {
	Repository RepositoryConfig `toml:"repository" yaml:"repository"`
	Output     OutputConfig     `toml:"output" yaml:"output"`
	Publish    PublishConfig    `toml:"publish" yaml:"publish"`
	Milestones MilestoneConfig  `toml:"milestones" yaml:"milestones"`
	Modules    []Module         `toml:"modules" yaml:"modules"`
}

// Validate checks the configuration for fields the pipeline cannot work without.
func (c *ReleaseConfig) Validate() error {
	if c.Repository.Owner == "" || c.Repository.Name == "" {
		return fmt.Errorf("%w: repository owner and name are required", ErrInvalidConfig)
	}
	if len(c.Modules) == 0 {
		return fmt.Errorf("%w: at least one module is required", ErrInvalidConfig)
	}

	seen := make(map[string]string, len(c.Modules))
	for _, m := range c.Modules {
		if strings.TrimSpace(m.ID) == "" {
			return fmt.Errorf("%w: module with empty id", ErrInvalidConfig)
		}
		if other, ok := seen[m.ShortID()]; ok {
			return fmt.Errorf("%w: modules %q and %q share short id %q", ErrInvalidConfig, other, m.ID, m.ShortID())
		}
		seen[m.ShortID()] = m.ID
	}

	for _, rw := range c.Milestones.Rewrites {
		if rw.From == "" {
			return fmt.Errorf("%w: milestone rewrite with empty prefix", ErrInvalidConfig)
		}
	}
	for _, col := range c.Milestones.Collapse {
		if _, err := ParseVersion(col.Into); err != nil {
			return fmt.Errorf("%w: collapse target: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Registry builds the module registry used by the classifier.
func (c *ReleaseConfig) Registry() *ModuleRegistry {
	return NewModuleRegistry(c.Modules, c.Publish.InfrastructureModule)
}

// Module looks a module up by its short or fully-qualified id.
func (c *ReleaseConfig) Module(id string) (Module, error) {
	for _, m := range c.Modules {
		if m.ID == id || m.ShortID() == id {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("%w: %s", ErrUnknownModule, id)
}
