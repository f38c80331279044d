package sync

import (
	"fmt"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// PurgeMissing marks every stored product whose id was not seen in the
// current pass as inactive, bumping its update timestamp. Rows are never
// deleted; a product that returns in a later pass is reactivated by the
// normal upsert. Returns the number of products deactivated.
func PurgeMissing(db *gorm.DB, seen map[int64]struct{}) (int64, error) {
	var ids []int64
	if err := db.Model(&models.Product{}).Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("failed to list stored product ids: %w", err)
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	// Updates through the model bumps updated_at alongside is_active.
	res := db.Model(&models.Product{}).
		Where("id IN ?", missing).
		Update("is_active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to deactivate missing products: %w", res.Error)
	}

	return res.RowsAffected, nil
}
