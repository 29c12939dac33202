package cmd

import (
	"context"
	"errors"
	"fmt"

	"foodfunk/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the property sources",
	Long:  `Checks the shared property file, the override table schema and every configured source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the shared property file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

var databaseCheckCmd = &cobra.Command{
	Use:   "database",
	Short: "Check and migrate the property_overrides table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

var sourcesCheckCmd = &cobra.Command{
	Use:   "sources",
	Short: "Validate every property source",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCheckCmd, databaseCheckCmd, sourcesCheckCmd)

	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Upload the default property file when it is missing")
	databaseCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the table")
}

func runIntegrityChecks(ctx context.Context, runStorage, runDatabase, runSources bool) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, store := connectOptional(cfg, logg)
	tbls := buildTables(cfg, logg, tableDeps{db: db, store: store})

	svc := integrity.NewService(integrity.Options{
		Client:   store,
		Bucket:   cfg.Storage.Bucket,
		Object:   cfg.Storage.Object,
		DB:       db,
		Tables:   tbls.integrityTables(),
		Defaults: tbls.defaultDocument,
	}, logg)

	if runStorage {
		logg.Info("Checking shared property file...", zap.String("object", cfg.Storage.Object))
		report, err := svc.CheckStorage(ctx)
		switch {
		case errors.Is(err, integrity.ErrNotConfigured):
			logg.Info("Storage is disabled, skipping.")
		case err != nil:
			return fmt.Errorf("storage check failed: %w", err)
		case len(report.Missing) == 0:
			logg.Info("Property file is complete.", zap.Strings("sections", report.Sections))
		default:
			logg.Warn("Property file is incomplete", zap.Bool("exists", report.Exists), zap.Strings("missing", report.Missing))
			if fixFlag && !report.Exists {
				if err := svc.FixStorage(ctx); err != nil {
					return fmt.Errorf("failed to upload property file: %w", err)
				}
			} else if !report.Exists {
				logg.Info("Run with --fix to upload the defaults.")
			}
		}
	}

	if runDatabase {
		logg.Info("Checking property_overrides schema...")
		report, err := svc.CheckDatabase()
		switch {
		case errors.Is(err, integrity.ErrNotConfigured):
			logg.Info("Database is disabled, skipping.")
		case err != nil:
			return fmt.Errorf("schema check failed: %w", err)
		case report.Status == "ok":
			logg.Info("Schema is intact.")
		default:
			logg.Warn("Missing columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
			if fixFlag {
				if err := svc.FixDatabase(ctx); err != nil {
					return fmt.Errorf("failed to migrate schema: %w", err)
				}
				logg.Info("Schema migrated successfully.")
			} else {
				logg.Info("Run with --fix to migrate the table.")
			}
		}
	}

	if runSources {
		logg.Info("Validating property sources...")
		for table, reports := range svc.CheckSources(ctx) {
			for _, r := range reports {
				fields := []zap.Field{zap.String("table", table), zap.String("source", r.Source), zap.Int("entries", r.Entries)}
				switch r.Status {
				case "ok":
					logg.Info("Source is valid", fields...)
				case "invalid":
					logg.Warn("Source has undecodable entries", append(fields, zap.Strings("invalid", r.Invalid))...)
				default:
					logg.Error("Source failed to load", append(fields, zap.String("error", r.Error))...)
				}
			}
		}
	}
	return nil
}
