package models

import (
	"fmt"

	"gorm.io/gorm"
)

// EnsureSchema creates the catalog tables, constraints, and indexes if they
// do not exist yet. It is idempotent and safe to invoke on an already
// populated store, so the engine calls it at the start of every pass.
func EnsureSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Category{},
		&Brand{},
		&Material{},
		&Tag{},
		&Product{},
		&Inventory{},
		&ProductRating{},
		&ProductTag{},
	)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// TableNames lists the catalog tables in dependency order.
func TableNames() []string {
	return []string{
		"categories",
		"brands",
		"materials",
		"tags",
		"products",
		"inventory",
		"product_ratings",
		"product_tags",
	}
}
