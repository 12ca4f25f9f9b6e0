package cmd

import (
	"github.com/spf13/cobra"

	config "activity-tracker.com/activity-tracker/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		database, closeDB, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := config.Migrate(database); err != nil {
			return err
		}

		logger.Info("schema is up to date", "dsn", cfg.DatabaseDSN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
