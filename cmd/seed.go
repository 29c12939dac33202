package cmd

import (
	"fmt"

	"foodfunk/core/database"
	"foodfunk/core/source"
	"foodfunk/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write default properties into the database",
	Long: `Creates the property_overrides table if needed and inserts the built-in
defaults. Rows that already exist are left untouched, and so are keys already
configured in the property file or the shared storage object.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := source.EnsureSchema(cmd.Context(), db); err != nil {
			return err
		}

		var store storage.Client
		if cfg.Storage.Enabled {
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		cfg.Properties.UseDatabase = true
		tbls := buildTables(cfg, logg, tableDeps{db: db, store: store})

		for section, set := range tbls.seedable() {
			n, err := source.SeedDefaults(cmd.Context(), db, section, set.entries, set.lower...)
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", section, err)
			}
			logg.Info("Seeded defaults", zap.String("section", section), zap.Int64("inserted", n), zap.Int("defaults", len(set.entries)))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
