package cli

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all <tag>",
	Short: "Generate every release artifact",
	Long: `Fetches the pull requests once and writes the changelog, the marketplace
posts, the release notes and the add-on catalogue. A file that cannot be
written does not stop the others; the command then exits non-zero.`,
	Args: releaseTagArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
