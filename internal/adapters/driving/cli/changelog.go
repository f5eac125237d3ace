package cli

import (
	"github.com/spf13/cobra"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog <tag>",
	Short: "Generate the full changelog",
	Long: `Writes Changelog.md with one section per module and one sub-section per
released version, newest first. Modules without changes keep their header.`,
	Args: releaseTagArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, domain.ArtifactChangelog)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
}
