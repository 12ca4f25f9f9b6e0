package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	repository "activity-tracker.com/activity-tracker/internal/repositories"
)

var dbCheckCmd = &cobra.Command{
	Use:   "db-check",
	Short: "Report which tables exist and how many users are stored",
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

		tables, err := repository.InspectSchema(cmd.Context(), database)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ready := true
		for _, table := range tables {
			state := "ok"
			if !table.Exists {
				state = "missing"
				ready = false
			}
			fmt.Fprintf(out, "%-26s %s\n", table.Name, state)
		}

		if !ready {
			logger.Warn("schema incomplete, run: activity-tracker migrate")
			return nil
		}

		count, err := repository.NewUserRepository(database).Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "users: %d\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCheckCmd)
}
