package cmd

import (
	"github.com/spf13/cobra"

	repository "activity-tracker.com/activity-tracker/internal/repositories"
	"activity-tracker.com/activity-tracker/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo users and projects",
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

		seeder := services.NewSeedService(
			repository.NewUserRepository(database),
			repository.NewProjectRepository(database),
		)
		result, err := seeder.Seed(cmd.Context())
		if err != nil {
			return err
		}

		logger.Info("seed complete", "users", result.UsersCreated, "projects", result.ProjectsCreated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
