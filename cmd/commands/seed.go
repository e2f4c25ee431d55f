package commands

import (
	"Groeneweide-Backend/cmd/config"
	migration "Groeneweide-Backend/cmd/database/migrate"
	"Groeneweide-Backend/cmd/database/seed"

	"github.com/spf13/cobra"
)

var fixturesPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture data",
	Long: `Migrate the schema and insert the rows from a fixtures file. Rows whose
key already exists are skipped, so seeding twice is harmless.`,
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
		if err := migration.Migrate(db, logger); err != nil {
			return err
		}
		return seed.Seed(db, fixturesPath, logger)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&fixturesPath, "file", "f", "cmd/database/seed/fixtures.yaml", "Fixtures file")
}
