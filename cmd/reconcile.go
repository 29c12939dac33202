package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"foodfunk/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	purgeOverrides bool
	dryRunPurge    bool
	yesConfirm     bool
)

// reconcileCmd compares the layers of a property table.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <table>",
	Short: "Compare a table's file, storage and database layers",
	Long: `Reconcile a property table across its sources.

Reports keys defined by several layers, layers that disagree, and values that
do not decode. Optionally purge database overrides that are redundant or
undecodable.

Examples:
  # Report only
  reconcile rot

  # Purge overrides (with interactive confirmation)
  reconcile rot --purge

  # Purge with auto-confirm (non-interactive)
  reconcile rot --purge --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&purgeOverrides, "purge", false, "Enable purge (delete redundant or undecodable overrides)")
	reconcileCmd.Flags().BoolVar(&dryRunPurge, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	// Overrides are what reconcile is about; enable the database layer.
	cfg.Properties.UseDatabase = true
	db, store := connectOptional(cfg, l)
	if db == nil {
		return fmt.Errorf("database connection required")
	}

	tbls := buildTables(cfg, l, tableDeps{db: db, store: store})
	spec, err := tbls.reconcileSpec(args[0])
	if err != nil {
		return err
	}

	opts := reconcile.Options{
		DoPurge: purgeOverrides,
		DryRun:  dryRunPurge,
	}

	l.Info("Planning reconciliation...", zap.String("table", spec.Section))
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printReconcileReport(l, plan)

	if !purgeOverrides {
		l.Info("No actions requested. Use --purge to delete redundant overrides.")
		return nil
	}
	if dryRunPurge {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No actions required.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	deleted, err := reconcile.ApplyPlan(ctx, spec, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	l.Info("Successfully deleted overrides", zap.Int64("count", deleted))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_keys", s.TotalKeys),
		zap.Int("overridden", s.Overridden),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("invalid", s.Invalid),
	)

	for _, r := range plan.Results {
		if len(r.Mismatch) > 0 || len(r.Invalid) > 0 {
			l.Info("Key differs",
				zap.String("key", r.Key),
				zap.String("effective", r.Effective),
				zap.Strings("mismatch", r.Mismatch),
				zap.Strings("invalid", r.Invalid),
			)
		}
	}

	if len(plan.Actions) == 0 {
		return
	}
	l.Info("Planned actions", zap.Int("purge_actions", s.PurgeActions))

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
