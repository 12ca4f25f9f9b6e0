package cmd

import (
	"os"

	charmLog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	config "activity-tracker.com/activity-tracker/internal/configs"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "activity-tracker",
	Short:         "Activity tracking service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		charmLog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
}

// bootstrap loads .env, the config file and environment, and builds the logger.
func bootstrap() (config.Config, *charmLog.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	if envErr != nil {
		logger.Debug(".env file not found, using environment variables")
	}

	return cfg, logger, nil
}

func openDatabase(cfg config.Config, logger *charmLog.Logger) (*gorm.DB, func(), error) {
	db, err := config.NewDatabaseClient(cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = sqlDB.Close() }, nil
}
