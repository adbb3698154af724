package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/recordkit/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Init writes a default configuration file if none exists yet.

Example:
  recordkit init --config ./recordkit.yaml`,
	Args: cobra.NoArgs,
	// The root hook loads the config file; init must run before one
	// exists, so it opts out.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if _, err := config.BootstrapConfig(path); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration ready at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
