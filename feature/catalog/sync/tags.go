package sync

import (
	"fmt"
	"strings"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParseTagExpression splits a raw tag cell into its target tag-name set.
// The delimiter is a semicolon if one is present, otherwise a comma.
// Tokens are trimmed, empty tokens dropped, and duplicates collapsed
// while preserving first-seen order.
func ParseTagExpression(raw string) []string {
	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}

	var names []string
	seen := make(map[string]struct{})
	for _, token := range strings.Split(raw, sep) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		names = append(names, token)
	}
	return names
}

// ReconcileTags adjusts the product's tag links to exactly the set implied
// by the raw expression: missing links are added, stale links removed.
// An absent or empty expression removes every link for the product.
// Returns the number of tags in the target set.
func ReconcileTags(db *gorm.DB, productID int64, raw string) (int, error) {
	names := ParseTagExpression(raw)

	tagIDs := make([]uint, 0, len(names))
	for _, name := range names {
		// Same duplicate-tolerant insert pattern as dimensions.
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&models.Tag{Name: name}).Error
		if err != nil {
			return 0, fmt.Errorf("failed to create tag %q: %w", name, err)
		}

		var tag models.Tag
		if err := db.Where("name = ?", name).Take(&tag).Error; err != nil {
			return 0, fmt.Errorf("failed to read back tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	for _, tagID := range tagIDs {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.ProductTag{ProductID: productID, TagID: tagID}).Error
		if err != nil {
			return 0, fmt.Errorf("failed to link product %d to tag %d: %w", productID, tagID, err)
		}
	}

	// Remove links no longer implied by the row.
	stale := db.Where("product_id = ?", productID)
	if len(tagIDs) > 0 {
		stale = stale.Where("tag_id NOT IN ?", tagIDs)
	}
	if err := stale.Delete(&models.ProductTag{}).Error; err != nil {
		return 0, fmt.Errorf("failed to remove stale tags for product %d: %w", productID, err)
	}

	return len(tagIDs), nil
}
