package matching

import (
	"maps"
	"sync"
	"sync/atomic"
)

// Observer is notified of every resolution. It must be safe for concurrent use.
type Observer interface {
	ObserveLookup(table string, kind Kind)
}

// Option configures a Table.
type Option func(*options)

type options struct {
	resolver Resolver
	observer Observer
}

// WithRegistry uses reg for ids, categories and aliases.
func WithRegistry(reg *MemoryRegistry) Option {
	return func(o *options) {
		o.resolver = Resolver{IDs: reg, Categories: reg, Aliases: reg}
	}
}

// WithIDs sets the id registry.
func WithIDs(ids IDRegistry) Option {
	return func(o *options) { o.resolver.IDs = ids }
}

// WithCategories sets the category registry.
func WithCategories(c CategoryRegistry) Option {
	return func(o *options) { o.resolver.Categories = c }
}

// WithAliases sets the alias registry.
func WithAliases(a AliasRegistry) Option {
	return func(o *options) { o.resolver.Aliases = a }
}

// WithObserver reports every resolution to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Table is a priority-matching key to value table.
//
// Reads are lock-free against an immutable map snapshot. Writers (AddDefault,
// Replace) build a new map and publish it atomically, so readers never see a
// partially populated table.
type Table[T any] struct {
	name     string
	noMatch  T
	resolver Resolver
	observer Observer

	mu      sync.Mutex // serializes writers
	entries atomic.Pointer[map[string]T]
}

// New creates a table named name holding a copy of entries. noMatch is
// returned by the Value methods when no candidate key is configured.
func New[T any](name string, entries map[string]T, noMatch T, opts ...Option) *Table[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[T]{
		name:     name,
		noMatch:  noMatch,
		resolver: o.resolver,
		observer: o.observer,
	}

	m := make(map[string]T, len(entries))
	maps.Copy(m, entries)
	t.entries.Store(&m)

	return t
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// NoMatchValue returns the value substituted when nothing matches.
func (t *Table[T]) NoMatchValue() T {
	return t.noMatch
}

// Resolver returns the key derivation used by the table.
func (t *Table[T]) Resolver() Resolver {
	return t.resolver
}

// Len returns the number of configured entries.
func (t *Table[T]) Len() int {
	return len(*t.entries.Load())
}

// Snapshot returns a copy of the configured entries.
func (t *Table[T]) Snapshot() map[string]T {
	return maps.Clone(*t.entries.Load())
}

// Derive returns a detached table with the same name, no-match value and
// registries, holding a copy of entries. Reloads seed defaults into a derived
// table before publishing it with Replace.
func (t *Table[T]) Derive(entries map[string]T) *Table[T] {
	return New(t.name, entries, t.noMatch,
		WithIDs(t.resolver.IDs),
		WithCategories(t.resolver.Categories),
		WithAliases(t.resolver.Aliases),
	)
}

// Replace swaps the whole mapping for a copy of entries.
func (t *Table[T]) Replace(entries map[string]T) {
	m := make(map[string]T, len(entries))
	maps.Copy(m, entries)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries.Store(&m)
}

// ----------------------------------------------------------------------------
// Default registration

// AddDefault stores value under key unless key is already configured. It
// always returns true: the table now holds some value for key, whether or not
// this call wrote it.
func (t *Table[T]) AddDefault(key string, value T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := *t.entries.Load()
	if _, ok := cur[key]; ok {
		return true
	}

	next := make(map[string]T, len(cur)+1)
	maps.Copy(next, cur)
	next[key] = value
	t.entries.Store(&next)

	return true
}

// AddDefaults applies AddDefault to every key and returns true only if every
// call did. All keys are attempted.
func (t *Table[T]) AddDefaults(keys []string, value T) bool {
	success := true
	for _, key := range keys {
		success = t.AddDefault(key, value) && success
	}
	return success
}

// AddDefaultItem stores value under the item's registered id. It returns
// false and writes nothing when the item has no id, e.g. because another mod
// removed it.
func (t *Table[T]) AddDefaultItem(item Item, value T) bool {
	id, ok := t.resolver.ItemID(item)
	if !ok {
		return false
	}
	return t.AddDefault(id.String(), value)
}

// AddDefaultItemOr is AddDefaultItem with a backup key used when the item has
// no registered id.
func (t *Table[T]) AddDefaultItemOr(item Item, backup string, value T) bool {
	key := backup
	if id, ok := t.resolver.ItemID(item); ok {
		key = id.String()
	}
	return t.AddDefault(key, value)
}

// ----------------------------------------------------------------------------
// Resolution

// Lookup scans keys in order and returns the first configured value. The
// result kind is Found or Absent.
func (t *Table[T]) Lookup(keys []string) Result[T] {
	m := *t.entries.Load()
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return Result[T]{Value: v, Kind: Found, Key: key}
		}
	}
	return Result[T]{Kind: Absent}
}

// Resolve is Lookup with the no-match value substituted for absence. The
// result kind is Found or NoMatch.
func (t *Table[T]) Resolve(keys []string) Result[T] {
	r := t.Lookup(keys)
	if r.Kind != Found {
		r = Result[T]{Value: t.noMatch, Kind: NoMatch}
	}
	t.observe(r.Kind)
	return r
}

func (t *Table[T]) observe(kind Kind) {
	if t.observer != nil {
		t.observer.ObserveLookup(t.name, kind)
	}
}

// PropertyKeys returns the value of the first configured key. Absence is
// reported to the observer as Absent.
func (t *Table[T]) PropertyKeys(keys []string) (T, bool) {
	r := t.Lookup(keys)
	t.observe(r.Kind)
	if !r.Matched() {
		var zero T
		return zero, false
	}
	return r.Value, true
}

// ValueKeys returns the value of the first configured key, or the no-match value.
func (t *Table[T]) ValueKeys(keys []string) T {
	return t.Resolve(keys).Value
}

// MatchesKeys reports whether any key is configured.
func (t *Table[T]) MatchesKeys(keys []string) bool {
	return t.Resolve(keys).Matched()
}

// PropertyKey looks up a single raw key.
func (t *Table[T]) PropertyKey(key string) (T, bool) { return t.PropertyKeys([]string{key}) }

// ValueKey looks up a single raw key.
func (t *Table[T]) ValueKey(key string) T { return t.ValueKeys([]string{key}) }

// MatchesKey looks up a single raw key.
func (t *Table[T]) MatchesKey(key string) bool { return t.MatchesKeys([]string{key}) }

// PropertyStack resolves an item stack.
func (t *Table[T]) PropertyStack(s *ItemStack) (T, bool) {
	return t.PropertyKeys(t.resolver.StackKeys(s))
}

// ValueStack resolves an item stack.
func (t *Table[T]) ValueStack(s *ItemStack) T { return t.ValueKeys(t.resolver.StackKeys(s)) }

// MatchesStack resolves an item stack.
func (t *Table[T]) MatchesStack(s *ItemStack) bool { return t.MatchesKeys(t.resolver.StackKeys(s)) }

// PropertyEntity resolves an entity.
func (t *Table[T]) PropertyEntity(e Entity) (T, bool) {
	return t.PropertyKeys(t.resolver.EntityKeys(e))
}

// ValueEntity resolves an entity.
func (t *Table[T]) ValueEntity(e Entity) T { return t.ValueKeys(t.resolver.EntityKeys(e)) }

// MatchesEntity resolves an entity.
func (t *Table[T]) MatchesEntity(e Entity) bool { return t.MatchesKeys(t.resolver.EntityKeys(e)) }

// PropertyTile resolves a tile entity.
func (t *Table[T]) PropertyTile(te TileEntity) (T, bool) {
	return t.PropertyKeys(t.resolver.TileKeys(te))
}

// ValueTile resolves a tile entity.
func (t *Table[T]) ValueTile(te TileEntity) T { return t.ValueKeys(t.resolver.TileKeys(te)) }

// MatchesTile resolves a tile entity.
func (t *Table[T]) MatchesTile(te TileEntity) bool { return t.MatchesKeys(t.resolver.TileKeys(te)) }

// PropertyLocation resolves a resource location.
func (t *Table[T]) PropertyLocation(loc *ResourceLocation) (T, bool) {
	return t.PropertyKeys(t.resolver.LocationKeys(loc))
}

// ValueLocation resolves a resource location.
func (t *Table[T]) ValueLocation(loc *ResourceLocation) T {
	return t.ValueKeys(t.resolver.LocationKeys(loc))
}

// MatchesLocation resolves a resource location.
func (t *Table[T]) MatchesLocation(loc *ResourceLocation) bool {
	return t.MatchesKeys(t.resolver.LocationKeys(loc))
}
