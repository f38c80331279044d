// Package sync implements the reconciliation engine that converges the
// normalized catalog store to match a tabular source-of-truth.
//
// The engine is never handed a diff. It derives inserts, updates, and
// removals from row content alone:
//
//  1. Resolver: get-or-create mapping of dimension names (category, brand,
//     material) to stable ids, deduplicated by a pass-scoped cache. The
//     dimension set is a closed enum mapped statically to its tables.
//  2. Upserter: one idempotent write per row for the product plus its
//     one-to-one inventory and rating children. Full-field overwrite, not
//     merge; created_at preserved, updated_at bumped on every touch.
//  3. ReconcileTags: the product's tag links are adjusted to exactly the
//     set implied by the row, adding missing links and removing stale ones.
//  4. PurgeMissing: after a fully completed pass, products absent from the
//     source are soft-deleted (is_active off), never removed.
//
// # Failure Semantics
//
// Rows are processed strictly sequentially. A row-level error (bad numeric
// cell, non-positive price) aborts the remaining rows of the pass; prior
// rows stand durably. Callers treat an aborted pass as partially applied and
// safe to retry, because every write is an idempotent upsert. Purge never
// runs after an aborted pass, so the seen-id accounting cannot be applied
// partially.
//
// # Usage
//
//	engine := sync.NewEngine(db, log)
//	summary, err := engine.Run(ctx, sync.Options{
//	    Source:       "products.xlsx",
//	    PurgeMissing: true,
//	})
package sync
