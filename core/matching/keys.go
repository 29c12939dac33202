package matching

import "strconv"

// Resolver derives candidate key sequences from subjects. Nil registries are
// treated as knowing nothing.
type Resolver struct {
	IDs        IDRegistry
	Categories CategoryRegistry
	Aliases    AliasRegistry
}

// StackKeys returns the candidate keys of an item stack, highest priority
// first: id@meta, id, aliases, food tag. Aliases are only consulted for
// non-empty stacks.
func (r Resolver) StackKeys(stack *ItemStack) []string {
	if stack == nil {
		return nil
	}

	keys := make([]string, 0, 4)

	if r.IDs != nil && stack.Item != nil {
		if id, ok := r.IDs.ItemID(stack.Item); ok {
			name := id.String()
			keys = append(keys, name+"@"+strconv.Itoa(stack.Meta), name)
		}
	}

	if r.Aliases != nil && !stack.IsEmpty() {
		keys = append(keys, r.Aliases.Aliases(stack)...)
	}

	if r.Categories != nil && stack.Item != nil && r.Categories.IsFood(stack.Item) {
		keys = append(keys, FoodTag)
	}

	return keys
}

// EntityKeys returns the entity's registered type name, or nothing.
func (r Resolver) EntityKeys(entity Entity) []string {
	if entity == nil || r.IDs == nil {
		return nil
	}
	name, ok := r.IDs.EntityName(entity)
	if !ok {
		return nil
	}
	return []string{name}
}

// TileKeys returns the id registered for the tile's type, or nothing.
func (r Resolver) TileKeys(tile TileEntity) []string {
	if tile == nil || r.IDs == nil {
		return nil
	}
	id, ok := r.IDs.TileID(tile)
	if !ok {
		return nil
	}
	return []string{id.String()}
}

// LocationKeys returns the location's string form, or nothing for nil.
func (r Resolver) LocationKeys(loc *ResourceLocation) []string {
	if loc == nil {
		return nil
	}
	return []string{loc.String()}
}

// ItemID resolves the id of an item type.
func (r Resolver) ItemID(item Item) (ResourceLocation, bool) {
	if r.IDs == nil || item == nil {
		return ResourceLocation{}, false
	}
	return r.IDs.ItemID(item)
}
