package checks

import (
	"context"
	"sort"

	"foodfunk/core/source"
)

// Validator reports whether a raw property value decodes.
type Validator func(raw any) error

// SourceReport describes one property source of a table.
type SourceReport struct {
	Source  string   `json:"source"`
	Status  string   `json:"status"` // "ok", "invalid", "error"
	Entries int      `json:"entries"`
	Invalid []string `json:"invalid"`
	Error   string   `json:"error,omitempty"`
}

// CheckSource loads src and validates every entry. Load failures are reported,
// not returned, so one broken source does not hide the others.
func CheckSource(ctx context.Context, src source.Source, validate Validator) SourceReport {
	report := SourceReport{Source: src.Name(), Status: "ok", Invalid: []string{}}

	entries, err := src.Load(ctx)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report
	}

	report.Entries = len(entries)
	for key, raw := range entries {
		if err := validate(raw); err != nil {
			report.Invalid = append(report.Invalid, key)
		}
	}
	if len(report.Invalid) > 0 {
		sort.Strings(report.Invalid)
		report.Status = "invalid"
	}
	return report
}
