// Package properties exposes the matching tables over HTTP.
//
// Each table is bound by name (Bind) so tables of different value types share
// one handler. Raw keys resolve with the same priority rules as in-game
// subjects: "id@meta" falls back to "id".
//
// # HTTP Endpoints
//
//   - GET  /properties                : List bound tables.
//   - GET  /properties/:table         : Export a table's entries.
//   - GET  /properties/:table/:key    : Resolve a key (e.g. 'minecraft:fish@1').
//   - POST /properties/:table/reload  : Reload a table from its sources.
package properties
