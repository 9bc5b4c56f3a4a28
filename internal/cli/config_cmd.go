package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hostdash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration hostdash would run with, after defaults, the
config file and HOSTDASH_* environment variables are applied.

Examples:
  hostdash config
  HOSTDASH_PROVIDER=library hostdash config`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		source := cfg.Source
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
