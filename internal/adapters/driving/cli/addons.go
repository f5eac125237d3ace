package cli

import (
	"github.com/spf13/cobra"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

var addonsCmd = &cobra.Command{
	Use:   "addons <tag>",
	Short: "Generate the add-on catalogue",
	Long: `Writes addons.json describing every listed module from its README.
No pull requests are fetched.`,
	Args: releaseTagArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, domain.ArtifactAddons)
	},
}

func init() {
	rootCmd.AddCommand(addonsCmd)
}
