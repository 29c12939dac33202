package matching

import (
	"reflect"
	"sync"
)

// IDRegistry maps engine objects to their canonical names.
type IDRegistry interface {
	// ItemID returns the namespaced id an item was registered under.
	ItemID(item Item) (ResourceLocation, bool)
	// EntityName returns the registered type name of an entity.
	EntityName(entity Entity) (string, bool)
	// TileID returns the namespaced id registered for the tile's implementing type.
	TileID(tile TileEntity) (ResourceLocation, bool)
}

// CategoryRegistry answers category membership for items.
type CategoryRegistry interface {
	IsFood(item Item) bool
}

// AliasRegistry returns synonym names for a stack, in registration order.
type AliasRegistry interface {
	Aliases(stack *ItemStack) []string
}

// MemoryRegistry is an in-memory IDRegistry, CategoryRegistry and
// AliasRegistry. Register everything before concurrent reads begin; the
// mutex only protects against misuse.
type MemoryRegistry struct {
	mu       sync.RWMutex
	items    map[Item]ResourceLocation
	entities map[reflect.Type]string
	tiles    map[reflect.Type]ResourceLocation
	food     map[Item]struct{}
	aliases  map[aliasKey][]string
}

// aliasKey addresses aliases registered for one item variant. A wildcard
// entry (AnyMeta) applies to every variant of the item.
type aliasKey struct {
	item Item
	meta int
}

// AnyMeta registers an alias for every metadata variant of an item.
const AnyMeta = -1

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		items:    make(map[Item]ResourceLocation),
		entities: make(map[reflect.Type]string),
		tiles:    make(map[reflect.Type]ResourceLocation),
		food:     make(map[Item]struct{}),
		aliases:  make(map[aliasKey][]string),
	}
}

// hashable reports whether item can key a map. Items that cannot are never
// registered and never match.
func hashable(item Item) bool {
	return item != nil && reflect.ValueOf(item).Comparable()
}

// RegisterItem records the id of an item. Non-comparable items are ignored.
func (r *MemoryRegistry) RegisterItem(item Item, id ResourceLocation) {
	if !hashable(item) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item] = id
}

// RegisterEntity records the type name for all entities sharing prototype's type.
func (r *MemoryRegistry) RegisterEntity(prototype Entity, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[reflect.TypeOf(prototype)] = name
}

// RegisterTile records the id for all tile entities sharing prototype's type.
func (r *MemoryRegistry) RegisterTile(prototype TileEntity, id ResourceLocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiles[reflect.TypeOf(prototype)] = id
}

// MarkFood places an item in the food category.
func (r *MemoryRegistry) MarkFood(item Item) {
	if !hashable(item) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.food[item] = struct{}{}
}

// RegisterAlias appends name to the aliases of an item variant. Use AnyMeta
// to cover every variant.
func (r *MemoryRegistry) RegisterAlias(item Item, meta int, name string) {
	if !hashable(item) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := aliasKey{item: item, meta: meta}
	r.aliases[k] = append(r.aliases[k], name)
}

// ItemID implements IDRegistry.
func (r *MemoryRegistry) ItemID(item Item) (ResourceLocation, bool) {
	if !hashable(item) {
		return ResourceLocation{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.items[item]
	return id, ok
}

// EntityName implements IDRegistry.
func (r *MemoryRegistry) EntityName(entity Entity) (string, bool) {
	if entity == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.entities[reflect.TypeOf(entity)]
	return name, ok && name != ""
}

// TileID implements IDRegistry.
func (r *MemoryRegistry) TileID(tile TileEntity) (ResourceLocation, bool) {
	if tile == nil {
		return ResourceLocation{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.tiles[reflect.TypeOf(tile)]
	return id, ok
}

// IsFood implements CategoryRegistry.
func (r *MemoryRegistry) IsFood(item Item) bool {
	if !hashable(item) {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.food[item]
	return ok
}

// Aliases implements AliasRegistry. Exact-variant aliases come before
// wildcard ones.
func (r *MemoryRegistry) Aliases(stack *ItemStack) []string {
	if stack.IsEmpty() || !hashable(stack.Item) {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	names = append(names, r.aliases[aliasKey{item: stack.Item, meta: stack.Meta}]...)
	if stack.Meta != AnyMeta {
		names = append(names, r.aliases[aliasKey{item: stack.Item, meta: AnyMeta}]...)
	}
	return names
}
