package properties

import (
	"context"

	"foodfunk/core/matching"
	"foodfunk/core/source"
)

// Binding exposes one typed table to the API without its type parameter.
type Binding interface {
	Name() string
	Resolve(keys []string) Resolution
	Export() map[string]any
	Reload(ctx context.Context) (*source.Report, error)
}

// Resolution is the type-erased result of resolving a subject.
type Resolution struct {
	Table      string   `json:"table"`
	Key        string   `json:"key,omitempty"`
	Candidates []string `json:"candidates"`
	Value      any      `json:"value"`
	Result     string   `json:"result"`
	MatchedKey string   `json:"matched_key,omitempty"`
	Matched    bool     `json:"matched"`
}

// Bind wraps a reloader and its table. encode converts values to a form the
// JSON and TOML encoders understand.
func Bind[T any](r *source.Reloader[T], encode func(T) any) Binding {
	return &binding[T]{reloader: r, encode: encode}
}

type binding[T any] struct {
	reloader *source.Reloader[T]
	encode   func(T) any
}

func (b *binding[T]) Name() string {
	return b.reloader.Table().Name()
}

func (b *binding[T]) Resolve(keys []string) Resolution {
	if keys == nil {
		keys = []string{}
	}
	r := b.reloader.Table().Resolve(keys)
	return Resolution{
		Table:      b.Name(),
		Candidates: keys,
		Value:      b.encode(r.Value),
		Result:     r.Kind.String(),
		MatchedKey: r.Key,
		Matched:    r.Matched(),
	}
}

func (b *binding[T]) Export() map[string]any {
	snap := b.reloader.Table().Snapshot()
	out := make(map[string]any, len(snap))
	for k, v := range snap {
		out[k] = b.encode(v)
	}
	return out
}

func (b *binding[T]) Reload(ctx context.Context) (*source.Report, error) {
	return b.reloader.Reload(ctx)
}

// CandidateKeys expands a raw key into its lookup sequence: the key as given,
// then the bare id when it carries a metadata suffix.
func CandidateKeys(key string) []string {
	id := matching.ParseIdentifier(key)
	if !id.HasMeta() {
		return []string{key}
	}
	return []string{key, id.ID}
}
