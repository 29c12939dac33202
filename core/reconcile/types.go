package reconcile

import (
	"context"
	"strings"
	"time"

	"foodfunk/core/source"
)

// Result represents the reconciliation output for a single property key.
type Result struct {
	// Key is the property key.
	Key string `json:"key"`

	// Values holds the raw value each defining source gives the key,
	// keyed by source name.
	Values map[string]any `json:"values"`

	// Effective is the name of the highest priority source defining the key.
	Effective string `json:"effective"`

	// Mismatch describes sources that disagree with a lower priority source,
	// e.g. "database:property_overrides=7 file:foodfunk.toml=5".
	Mismatch []string `json:"mismatch"`

	// Redundant lists the sources that repeat the value they override.
	Redundant []string `json:"redundant"`

	// Invalid lists the sources whose value does not decode.
	Invalid []string `json:"invalid"`
}

// Overridden reports whether more than one source defines the key.
func (r *Result) Overridden() bool {
	return len(r.Values) > 1
}

// Normalizer decodes a raw value so values from different sources compare
// equal when they mean the same thing ("5" and 5).
type Normalizer func(raw any) (any, error)

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Section is the property section being reconciled.
	Section string

	// Sources are the layers of the section, lowest priority first.
	Sources []source.Source

	// Overrides is the layer whose redundant entries can be purged. It must
	// implement Mutator for ApplyPlan to execute.
	Overrides source.Source

	// Normalize decodes values before comparison.
	Normalize Normalizer

	// CacheTTL is the time-to-live for cached indices.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey() string {
	parts := []string{s.Section}
	for _, src := range s.Sources {
		parts = append(parts, src.Name())
	}
	return strings.Join(parts, "|")
}

// Mutator deletes entries from an overrides layer.
type Mutator interface {
	Delete(ctx context.Context, keys []string) (int64, error)
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDeleteOverride deletes an entry from the overrides layer.
	ActionDeleteOverride ActionType = "delete_override"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the property key.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	Results []Result    `json:"results"`
	Actions []Action    `json:"actions"`
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalKeys is the number of distinct keys across all sources.
	TotalKeys int `json:"total_keys"`

	// Overridden counts keys defined by more than one source.
	Overridden int `json:"overridden"`

	// Mismatches counts keys whose sources disagree.
	Mismatches int `json:"mismatches"`

	// Invalid counts keys with at least one undecodable value.
	Invalid int `json:"invalid"`

	// PurgeActions counts planned purge (delete) actions.
	PurgeActions int `json:"purge_actions"`
}

// Options controls reconcile behavior for purge operations.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of redundant or undecodable overrides.
	DoPurge bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
