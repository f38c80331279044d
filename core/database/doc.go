// Package database handles the SQLite store connection and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure the SQLite connection used by the sync engine: foreign key
// enforcement on, a busy timeout, and a single writer connection.
//
// # Connect
//
// The Connect function opens (and if necessary creates) the store file,
// including the parent data directory. It is agnostic to the catalog schema;
// schema creation belongs to the catalog feature.
//
// # Schema Inspection
//
// The package includes tools to inspect the store, used by the stats command:
// retrieving table columns via PRAGMA table_info and counting rows per table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	stats, err := database.CollectStats(db, []string{"products", "tags"})
package database
