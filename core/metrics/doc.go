// Package metrics exposes Prometheus metrics for matching tables.
//
// The global Registry implements matching.Observer (lookup counts by result)
// and source.Recorder (reload counts and latency), so it can be handed
// directly to tables and reloaders.
package metrics
