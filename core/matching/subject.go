package matching

// FoodTag is the category key appended for items in the food category.
const FoodTag = "minecraft:food"

// Item is an engine item type. Registries key items by identity, so the
// dynamic type must be comparable (engine items are pointer singletons).
type Item any

// Entity is a live engine entity. Registries resolve its name from its
// dynamic type.
type Entity any

// TileEntity is a block-attached engine object. Registries resolve its id
// from its dynamic type.
type TileEntity any

// ItemStack is a quantity of one item variant.
type ItemStack struct {
	Item  Item
	Meta  int
	Count int
}

// NewItemStack returns a stack of count items with the given metadata.
func NewItemStack(item Item, meta, count int) *ItemStack {
	return &ItemStack{Item: item, Meta: meta, Count: count}
}

// IsEmpty reports whether the stack holds nothing. Nil stacks are empty.
func (s *ItemStack) IsEmpty() bool {
	return s == nil || s.Item == nil || s.Count <= 0
}
