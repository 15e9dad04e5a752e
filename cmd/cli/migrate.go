package cli

import (
	migration "recipe-catalog/cmd/database/migrate"
	"recipe-catalog/internal/utils"

	"github.com/spf13/cobra"
)

func MigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the recipes table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			setLogLevel()

			gateway, err := openGateway(cfg)
			if err != nil {
				return err
			}
			defer gateway.Close()

			return migration.Migrate(gateway.DB())
		},
	}
}
