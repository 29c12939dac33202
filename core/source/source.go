package source

import (
	"context"
	"fmt"

	"foodfunk/core/utils"
)

// Source loads the raw key to value pairs of one property section.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string
	// Load returns the section's entries. Values are undecoded.
	Load(ctx context.Context) (map[string]any, error)
}

// Decoder converts a raw property value into a table value.
type Decoder[T any] func(raw any) (T, error)

// Int decodes integer properties.
func Int(raw any) (int, error) { return utils.ToInt(raw) }

// Bool decodes boolean properties.
func Bool(raw any) (bool, error) { return utils.ToBool(raw) }

// Float decodes floating point properties.
func Float(raw any) (float64, error) { return utils.ToFloat(raw) }

// String decodes string properties.
func String(raw any) (string, error) { return utils.ToString(raw) }

// Undefined returns the entries whose keys none of the sources define. Writers
// of defaults into a high-priority layer use it so they never shadow a value
// configured in a lower one.
func Undefined[V any](ctx context.Context, entries map[string]V, sources ...Source) (map[string]V, error) {
	out := make(map[string]V, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	for _, src := range sources {
		defined, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", src.Name(), err)
		}
		for k := range defined {
			delete(out, k)
		}
	}
	return out, nil
}
