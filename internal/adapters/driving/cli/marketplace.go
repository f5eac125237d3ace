package cli

import (
	"github.com/spf13/cobra"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

var marketplaceCmd = &cobra.Command{
	Use:   "marketplace <tag>",
	Short: "Generate one marketplace post per module",
	Long: `Writes marketplace-<module>.md for every configured module: documentation
link, changelog and the download link of the release.`,
	Args: releaseTagArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, domain.ArtifactMarketplace)
	},
}

func init() {
	rootCmd.AddCommand(marketplaceCmd)
}
