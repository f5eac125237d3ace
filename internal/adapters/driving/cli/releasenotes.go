package cli

import (
	"github.com/spf13/cobra"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

var releaseNotesCmd = &cobra.Command{
	Use:   "release-notes <tag>",
	Short: "Generate the release notes of a release",
	Long: `Writes releaseNotes-<tag>.md listing the changes released in exactly
that version, infrastructure changes first.`,
	Args: releaseTagArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, domain.ArtifactReleaseNotes)
	},
}

func init() {
	rootCmd.AddCommand(releaseNotesCmd)
}
