package reconcile

import (
	"context"
	"fmt"
	"reflect"
	"sort"
)

// ReconcileAll compares every key across the sources of spec. Results are
// sorted by key.
func ReconcileAll(ctx context.Context, spec *Spec) ([]Result, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(cache, spec), nil
}

// ReconcileOne compares a single key across the sources of spec. A key no
// source defines yields a result with no values.
func ReconcileOne(ctx context.Context, spec *Spec, key string) (*Result, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	result := buildResult(key, cache, spec)
	return &result, nil
}

func reconcileFromCache(cache *Cache, spec *Spec) []Result {
	union := buildUnion(cache)

	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, cache, spec))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results
}

// buildUnion creates the union of keys over all sources.
func buildUnion(cache *Cache) map[string]struct{} {
	union := make(map[string]struct{})
	for _, entries := range cache.Index {
		for key := range entries {
			union[key] = struct{}{}
		}
	}
	return union
}

// buildResult walks the sources from lowest to highest priority, comparing
// each defined value with the one it overrides.
func buildResult(key string, cache *Cache, spec *Spec) Result {
	result := Result{
		Key:       key,
		Values:    make(map[string]any),
		Mismatch:  []string{},
		Redundant: []string{},
		Invalid:   []string{},
	}

	var (
		prevName  string
		prevRaw   any
		prevValue any
		prevOK    bool
	)
	for _, src := range spec.Sources {
		name := src.Name()
		raw, ok := cache.Index[name][key]
		if !ok {
			continue
		}
		result.Values[name] = raw
		result.Effective = name

		value, err := normalize(spec, raw)
		if err != nil {
			result.Invalid = append(result.Invalid, name)
		}

		if prevName != "" {
			if err == nil && prevOK && reflect.DeepEqual(value, prevValue) {
				result.Redundant = append(result.Redundant, name)
			} else {
				result.Mismatch = append(result.Mismatch, fmt.Sprintf("%s=%v %s=%v", name, raw, prevName, prevRaw))
			}
		}
		prevName, prevRaw, prevValue, prevOK = name, raw, value, err == nil
	}

	return result
}

func normalize(spec *Spec, raw any) (any, error) {
	if spec.Normalize == nil {
		return raw, nil
	}
	return spec.Normalize(raw)
}
