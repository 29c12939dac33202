package reconcile

import (
	"context"
	"fmt"
	"slices"
)

// ReconcileWithPlan performs reconciliation and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, opts Options) (*Plan, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}

	results := reconcileFromCache(cache, spec)
	summary, actions := buildPlanFromResults(results, spec, opts)

	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a plan and returns the number of entries
// deleted. Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, plan *Plan, opts Options) (int64, error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var keys []string
	for _, action := range plan.Actions {
		if action.Type == ActionDeleteOverride {
			keys = append(keys, action.Key)
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}

	mutator, ok := spec.Overrides.(Mutator)
	if !ok {
		return 0, fmt.Errorf("source %s does not support deletes", spec.Overrides.Name())
	}

	n, err := mutator.Delete(ctx, keys)
	if err != nil {
		return n, err
	}

	// The overrides layer changed; force the next reconcile to reload it.
	InvalidateCache(spec)
	return n, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
func ReconcileAndApply(ctx context.Context, spec *Spec, opts Options) (*Plan, int64, error) {
	plan, err := ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

// buildPlanFromResults generates a summary and, with DoPurge, delete actions
// for overrides that are undecodable or repeat the value they override.
func buildPlanFromResults(results []Result, spec *Spec, opts Options) (PlanSummary, []Action) {
	summary := PlanSummary{TotalKeys: len(results)}
	actions := []Action{}

	overrides := ""
	if spec.Overrides != nil {
		overrides = spec.Overrides.Name()
	}

	for _, result := range results {
		if result.Overridden() {
			summary.Overridden++
		}
		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}
		if len(result.Invalid) > 0 {
			summary.Invalid++
		}

		if !opts.DoPurge || overrides == "" {
			continue
		}
		if _, ok := result.Values[overrides]; !ok {
			continue
		}

		switch {
		case slices.Contains(result.Invalid, overrides):
			actions = append(actions, Action{Type: ActionDeleteOverride, Key: result.Key, Reason: "undecodable"})
		case slices.Contains(result.Redundant, overrides):
			actions = append(actions, Action{Type: ActionDeleteOverride, Key: result.Key, Reason: "redundant"})
		}
	}

	summary.PurgeActions = len(actions)
	return summary, actions
}
