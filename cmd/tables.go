package cmd

import (
	"context"
	"fmt"

	"foodfunk/core/config"
	"foodfunk/core/matching"
	"foodfunk/core/reconcile"
	"foodfunk/core/source"
	"foodfunk/core/storage"
	"foodfunk/feature/integrity"
	"foodfunk/feature/integrity/checks"
	"foodfunk/feature/preserving"
	"foodfunk/feature/properties"
	"foodfunk/feature/rot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tables wires the property tables to their sources.
type tables struct {
	preserving *source.Reloader[int]
	rot        *source.Reloader[rot.Property]
	sources    map[string][]source.Source
}

// tableDeps are the optional backends a table set can read from.
type tableDeps struct {
	db       *gorm.DB
	store    storage.Client
	observer matching.Observer
	recorder source.Recorder
}

func buildTables(cfg *config.Config, logg *zap.Logger, deps tableDeps) *tables {
	reg := matching.NewMemoryRegistry()
	preserving.Register(reg)

	opts := []matching.Option{matching.WithRegistry(reg)}
	if deps.observer != nil {
		opts = append(opts, matching.WithObserver(deps.observer))
	}

	sources := map[string][]source.Source{
		preserving.Section: sourcesFor(cfg, deps, preserving.Section),
		rot.Section:        sourcesFor(cfg, deps, rot.Section),
	}
	t := &tables{
		preserving: source.NewReloader(preserving.NewTable(opts...), preserving.Decode, preserving.Defaults, logg,
			sources[preserving.Section]...),
		rot: source.NewReloader(rot.NewTable(opts...), rot.Decode, rot.Defaults, logg,
			sources[rot.Section]...),
		sources: sources,
	}
	if deps.recorder != nil {
		t.preserving.SetRecorder(deps.recorder)
		t.rot.SetRecorder(deps.recorder)
	}
	return t
}

// sourcesFor orders the sources of section from lowest to highest priority:
// local file, shared storage object, database overrides.
func sourcesFor(cfg *config.Config, deps tableDeps, section string) []source.Source {
	file := source.NewFileSource(cfg.Properties.File, section)
	file.Optional = true

	sources := []source.Source{file}
	if cfg.Storage.Enabled && deps.store != nil {
		sources = append(sources, source.NewStorageSource(deps.store, cfg.Storage.Bucket, cfg.Storage.Object, section))
	}
	if cfg.Properties.UseDatabase && deps.db != nil {
		sources = append(sources, source.NewDBSource(deps.db, section))
	}
	return sources
}

func (t *tables) bindings() []properties.Binding {
	return []properties.Binding{
		properties.Bind(t.preserving, preserving.Encode),
		properties.Bind(t.rot, rot.Encode),
	}
}

func (t *tables) integrityTables() []integrity.Table {
	return []integrity.Table{
		{Name: preserving.Section, Sources: t.sources[preserving.Section], Validate: validator(preserving.Decode)},
		{Name: rot.Section, Sources: t.sources[rot.Section], Validate: validator(rot.Decode)},
	}
}

func validator[T any](decode source.Decoder[T]) checks.Validator {
	return func(raw any) error {
		_, err := decode(raw)
		return err
	}
}

// below returns the sources of section ranked under the first one matching
// layer, or all of them when none does.
func (t *tables) below(section string, layer func(source.Source) bool) []source.Source {
	srcs := t.sources[section]
	for i, src := range srcs {
		if layer(src) {
			return srcs[:i]
		}
	}
	return srcs
}

func isStorage(src source.Source) bool {
	_, ok := src.(*source.StorageSource)
	return ok
}

func isDatabase(src source.Source) bool {
	_, ok := src.(*source.DBSource)
	return ok
}

// defaultDocument renders the built-in defaults as a property file for the
// storage layer. Keys configured in a lower layer are left out.
func (t *tables) defaultDocument(ctx context.Context) ([]byte, error) {
	p := preserving.NewTable()
	preserving.Defaults(p)
	r := rot.NewTable()
	rot.Defaults(r)

	all := map[string]map[string]any{
		preserving.Section: encodeAll(p.Snapshot(), preserving.Encode),
		rot.Section:        encodeAll(r.Snapshot(), rot.Encode),
	}
	doc := make(map[string]map[string]any, len(all))
	for section, entries := range all {
		kept, err := source.Undefined(ctx, entries, t.below(section, isStorage)...)
		if err != nil {
			return nil, err
		}
		doc[section] = kept
	}
	return source.EncodeSections(doc)
}

// seedable returns the built-in defaults of every section in stored form,
// with the sources ranked under the database layer.
func (t *tables) seedable() map[string]seedSet {
	return map[string]seedSet{
		preserving.Section: {entries: preserving.DefaultEntries(), lower: t.below(preserving.Section, isDatabase)},
		rot.Section:        {entries: rot.DefaultEntries(), lower: t.below(rot.Section, isDatabase)},
	}
}

type seedSet struct {
	entries map[string]string
	lower   []source.Source
}

func encodeAll[T any](entries map[string]T, encode func(T) any) map[string]any {
	out := make(map[string]any, len(entries))
	for k, v := range entries {
		out[k] = encode(v)
	}
	return out
}

// reconcileSpec describes the layers of section for reconciliation. The
// database layer is the one that can be purged.
func (t *tables) reconcileSpec(section string) (*reconcile.Spec, error) {
	var normalize reconcile.Normalizer
	switch section {
	case preserving.Section:
		normalize = normalizer(preserving.Decode)
	case rot.Section:
		normalize = normalizer(rot.Decode)
	default:
		return nil, fmt.Errorf("unknown table %q", section)
	}

	spec := &reconcile.Spec{
		Section:   section,
		Sources:   t.sources[section],
		Normalize: normalize,
	}
	for _, src := range spec.Sources {
		if db, ok := src.(*source.DBSource); ok {
			spec.Overrides = db
		}
	}
	return spec, nil
}

func normalizer[T any](decode source.Decoder[T]) reconcile.Normalizer {
	return func(raw any) (any, error) {
		return decode(raw)
	}
}
