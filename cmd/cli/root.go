package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the recipe-catalog command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "recipe-catalog",
		Short: "Recipe catalog HTTP service",
		Long: `recipe-catalog stores recipes in PostgreSQL and serves them over HTTP,
ordered by popularity. Every detail fetch counts as one view.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the yaml config file")

	rootCmd.AddCommand(ServeCmd(&configPath))
	rootCmd.AddCommand(MigrateCmd(&configPath))
	return rootCmd
}
