package main

import (
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Prepare a foodgram database: schema, ingredient catalogue, tags and admin accounts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}

// openDB loads the same configuration as the API server and returns a
// migrated connection.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
