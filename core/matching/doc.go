// Package matching provides the generic priority-matching configuration table.
//
// A Table maps string keys to typed values and resolves, for a game object
// (the "subject"), the value of the highest-priority key the subject produces.
// Subjects are item stacks, entities, tile entities, or raw resource locations.
//
// # Candidate Keys
//
// Every lookup first derives an ordered candidate key sequence from the subject.
// For an item stack the order is:
//
//  1. "<namespace:path>@<meta>" (exact variant)
//  2. "<namespace:path>" (any variant)
//  3. alias names from the alias registry (ore-dictionary style synonyms)
//  4. "minecraft:food" when the item belongs to the food category
//
// Entities resolve to their registered type name, tile entities to the id
// registered for their implementing type, and resource locations to their
// string form. Resolution scans the sequence in order and stops at the first
// key present in the table.
//
// # No-Match Value
//
// Every table carries a no-match value returned by the Value* methods when no
// candidate key is configured. Resolve reports whether a value came from an
// entry or from the no-match substitution, so callers never compare values to
// tell "configured" from "defaulted".
//
// # Registries
//
// Key derivation depends on three narrow lookups that the host engine owns:
// IDRegistry, CategoryRegistry and AliasRegistry. MemoryRegistry implements
// all three for tests and for hosts that hand their registries over at startup.
//
// # Usage
//
//	reg := matching.NewMemoryRegistry()
//	reg.RegisterItem(apple, matching.MustParseResourceLocation("minecraft:apple"))
//	reg.MarkFood(apple)
//
//	days := matching.New("rot", nil, -1, matching.WithRegistry(reg))
//	days.AddDefault(matching.FoodTag, 7)
//
//	v := days.ValueStack(&matching.ItemStack{Item: apple, Count: 1}) // 7
package matching
