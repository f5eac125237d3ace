// Package cli implements the shj-release command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driving"
	"github.com/smarthomej/release-tools/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	configPath string
	outputDir  string
	dumpPath   string
	strictRun  bool
	verbose    bool
)

// Settings are the command line options that shape a run.
type Settings struct {
	// ConfigPath is the TOML or YAML file to load; empty for defaults.
	ConfigPath string

	// OutputDir overrides the configured output directory when set.
	OutputDir string

	// DumpPath replaces the GitHub source with a JSON dump when set.
	DumpPath string

	// Strict aborts the run when a page cannot be fetched.
	Strict bool
}

// ServiceFactory builds the release service for one run.
type ServiceFactory func(ctx context.Context, settings Settings) (driving.ReleaseService, error)

var newReleaseService ServiceFactory

var rootCmd = &cobra.Command{
	Use:   "shj-release",
	Short: "Generate release artifacts from merged pull requests",
	Long: `shj-release turns the merged pull requests of the add-on repository into
a full changelog, one marketplace post per module, release notes for a
release tag and the add-on catalogue.

Every generating command takes the release tag in x.y.z format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "configuration file (.toml, .yaml); built-in defaults when empty")
	flags.StringVarP(&outputDir, "output", "o", "", "output directory (default from configuration)")
	flags.StringVar(&dumpPath, "from-dump", "", "read pull requests from a JSON dump file or directory instead of GitHub")
	flags.BoolVar(&strictRun, "strict", false, "fail instead of rendering partial output when a page cannot be fetched")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log why pull requests were kept or dropped")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServiceFactory sets how release services are built.
func SetServiceFactory(f ServiceFactory) {
	newReleaseService = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Execute to a process exit status:
// 0 on success, 2 for usage errors, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrInvalidReleaseTag), errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

var errUsage = errors.New("usage")

// releaseTagArg accepts exactly one argument holding a valid release tag.
func releaseTagArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one release tag in x.y.z format, got %d arguments", errUsage, len(args))
	}
	_, err := domain.ParseReleaseTag(args[0])
	return err
}

func currentSettings() Settings {
	return Settings{
		ConfigPath: configPath,
		OutputDir:  outputDir,
		DumpPath:   dumpPath,
		Strict:     strictRun,
	}
}
