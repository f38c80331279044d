// Package models defines the normalized catalog store schema.
//
// The schema is a small star: three deduplicated dimension tables
// (categories, brands, materials) referenced by foreign key from products,
// two one-to-one child tables keyed on the product id (inventory,
// product_ratings), and a many-to-many tag association (tags, product_tags).
//
// # Schema Initialization
//
// EnsureSchema runs GORM AutoMigrate over the full model set. It only ever
// adds what is missing, so the engine invokes it before every pass; on a
// steady-state store it is a cheap no-op.
//
// # Lifecycle
//
//   - Dimension and tag rows are created lazily on first reference and are
//     never updated or deleted by the engine.
//   - Product, inventory, and rating rows are created on first sight of an id
//     and fully overwritten on every later sight.
//   - product_tags rows are reconciled each pass to exactly the set implied
//     by the source row.
//   - Products are never deleted; a purge pass only flips is_active off.
package models
