// Package reconcile compares the layers of a property section.
//
// A section may be defined by several sources at once: the local file, the
// shared storage object and database overrides. Reconciliation builds the
// union of keys over all layers and reports, per key, which layers define it,
// which layer wins and where layers disagree.
//
// # Architecture
//
// 1. Cache: every source is loaded concurrently into an index. Indices are
// cached per spec with a TTL, and concurrent builds are collapsed.
//
// 2. Engine: walks the layers from lowest to highest priority and compares
// normalized values, so "5" from a database row equals 5 from a TOML file.
//
// 3. Plan: with DoPurge, overrides that repeat the value they override or
// fail to decode become delete actions. ApplyPlan only executes a confirmed,
// non dry-run plan.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Section:   "rot",
//	    Sources:   []source.Source{file, db},
//	    Overrides: db,
//	    Normalize: func(raw any) (any, error) { return rot.Decode(raw) },
//	    CacheTTL:  time.Minute,
//	}
//
//	plan, deleted, err := reconcile.ReconcileAndApply(ctx, spec, reconcile.Options{DoPurge: true, Confirmed: true})
package reconcile
