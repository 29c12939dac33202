// Package rot decides how fast food decays and what it decays into.
//
// The rot table maps item keys to a Property (days until rotten, replacement
// item). Food without an id-specific entry falls back to the "minecraft:food"
// category entry. Clock tracks one stack's decay in game ticks; time spent in
// a preserving container is credited back through Clock.Preserve.
package rot
