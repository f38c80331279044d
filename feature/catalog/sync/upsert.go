package sync

import (
	"fmt"

	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/source"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Defaults applied when an optional numeric column is absent.
const (
	defaultWarrantyMonths = 12
	defaultReorderPoint   = 10
)

// productOverwriteColumns are the columns fully overwritten when a product
// id is seen again. created_at is preserved; updated_at takes the new value.
var productOverwriteColumns = []string{
	"name", "category_id", "brand_id", "model", "gender", "skill_level",
	"color", "size", "length_cm", "weight_kg", "price", "discount_percent",
	"material_id", "release_year", "season", "warranty_months", "sku",
	"barcode", "is_active", "updated_at",
}

// DimensionRefs carries the resolved dimension ids for one row.
type DimensionRefs struct {
	CategoryID *uint
	BrandID    *uint
	MaterialID *uint
}

// Upserter writes one product and its one-to-one children per source row.
type Upserter struct {
	db *gorm.DB
}

// NewUpserter creates an upserter against the given store.
func NewUpserter(db *gorm.DB) *Upserter {
	return &Upserter{db: db}
}

// UpsertRow decodes one row and performs the idempotent writes: the product
// is created on first sight of its id and fully overwritten on every later
// sight, then inventory and rating are upserted on the same id. A
// non-numeric or non-positive price fails the row before anything is
// written for it. Returns the product id.
func (u *Upserter) UpsertRow(row source.Row, refs DimensionRefs) (int64, error) {
	d := source.NewDecoder(row)

	id := d.Int64(source.ColID, 0)
	name := d.Str(source.ColProductName, "")
	price := d.Float(source.ColPrice, 0)

	product := models.Product{
		ID:              id,
		Name:            name,
		CategoryID:      refs.CategoryID,
		BrandID:         refs.BrandID,
		Model:           d.StrPtr(source.ColModel),
		Gender:          d.StrPtr(source.ColGender),
		SkillLevel:      d.StrPtr(source.ColLevel),
		Color:           d.StrPtr(source.ColColor),
		Size:            d.StrPtr(source.ColSize),
		LengthCm:        d.IntPtr(source.ColLengthCm),
		WeightKg:        d.FloatPtr(source.ColWeightKg),
		Price:           price,
		DiscountPercent: d.Int(source.ColDiscount, 0),
		MaterialID:      refs.MaterialID,
		ReleaseYear:     d.IntPtr(source.ColReleaseYear),
		Season:          d.StrPtr(source.ColSeason),
		WarrantyMonths:  d.Int(source.ColWarranty, defaultWarrantyMonths),
		SKU:             d.StrPtr(source.ColSKU),
		Barcode:         d.StrPtr(source.ColBarcode),
		IsActive:        d.Bool(source.ColActive, true),
	}

	inventory := models.Inventory{
		ProductID:        id,
		StockQuantity:    d.Int(source.ColStock, 0),
		ReservedQuantity: 0,
		ReorderPoint:     defaultReorderPoint,
	}

	rating := models.ProductRating{
		ProductID:     id,
		AverageRating: d.Float(source.ColRating, 0),
		TotalReviews:  d.Int(source.ColTotalReviews, 0),
	}

	// All fields are decoded before any write so a bad cell anywhere in
	// the row keeps the row out of the store entirely.
	if err := d.Err(); err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid product id %d", id)
	}
	if price <= 0 {
		return 0, fmt.Errorf("product %d has non-positive price %v", id, price)
	}
	if product.Name == "" {
		product.Name = fmt.Sprintf("Product %d", id)
	}

	err := u.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(productOverwriteColumns),
	}).Create(&product).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert product %d: %w", id, err)
	}

	err = u.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stock_quantity", "reserved_quantity", "reorder_point", "last_updated",
		}),
	}).Create(&inventory).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert inventory for product %d: %w", id, err)
	}

	err = u.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"average_rating", "total_reviews", "last_updated",
		}),
	}).Create(&rating).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert rating for product %d: %w", id, err)
	}

	return id, nil
}
