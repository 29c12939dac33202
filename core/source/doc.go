// Package source loads matching tables from property files, object storage
// and the database, and keeps them current.
//
// A Source returns the raw entries of one named section. Property documents
// are TOML or YAML; each table reads its own section:
//
//	[preserving]
//	"foodfunk:icebox" = 100
//	"minecraft:chest@0" = 25
//
//	[rot]
//	"minecraft:food" = { days = 7, replacement = "minecraft:rotten_flesh" }
//	"listAllfishraw" = 3
//
// # Reloading
//
// A Reloader merges its sources in order (later sources win), decodes every
// value with the table's Decoder, seeds defaults into a staging table and
// publishes the result with one atomic swap. Readers never observe a partially
// loaded table, and a failed reload leaves the previous table in place.
// Concurrent reloads of the same table share one execution (singleflight).
//
// Watch drives reloads from file changes.
package source
