package cmd

import (
	"fmt"
	"os"

	"foodfunk/core/config"
	"foodfunk/core/database"
	"foodfunk/core/logger"
	"foodfunk/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "foodfunk",
	Short: "Food preservation property service",
	Long: `foodfunk resolves rot and preserving properties for items and tiles.
Properties come from a local file, an S3 object and database overrides.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with dev timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding the .env file")
}

// setup loads configuration and builds the logger for one-shot commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// connectOptional opens the database and storage backends the configuration
// asks for. Failures are logged and leave the backend nil.
func connectOptional(cfg *config.Config, logg *zap.Logger) (*gorm.DB, storage.Client) {
	var db *gorm.DB
	if cfg.Properties.UseDatabase {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to property database", zap.String("driver", cfg.Database.Driver))
		}
	}

	var store storage.Client
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			store = client
		}
	}
	return db, store
}
