package commands

import (
	"Groeneweide-Backend/cmd/config"
	migration "Groeneweide-Backend/cmd/database/migrate"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		db, err := config.ConnectDB(cfg)
		if err != nil {
			return err
		}
		return migration.Migrate(db, logger)
	},
}
