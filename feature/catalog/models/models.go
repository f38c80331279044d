package models

import "time"

// Category is the product category lookup table.
// Rows are created lazily on first reference and never updated by the engine.
type Category struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;uniqueIndex;not null;size:100"`
	Description *string `gorm:"column:description"`
}

// TableName overrides the table name.
func (Category) TableName() string {
	return "categories"
}

// Brand is the product brand lookup table.
type Brand struct {
	ID              uint    `gorm:"column:id;primaryKey"`
	Name            string  `gorm:"column:name;uniqueIndex;not null;size:100"`
	CountryOfOrigin *string `gorm:"column:country_of_origin"`
	FoundedYear     *int    `gorm:"column:founded_year"`
}

// TableName overrides the table name.
func (Brand) TableName() string {
	return "brands"
}

// Material is the product material lookup table.
type Material struct {
	ID         uint    `gorm:"column:id;primaryKey"`
	Name       string  `gorm:"column:name;uniqueIndex;not null;size:100"`
	Properties *string `gorm:"column:properties"`
}

// TableName overrides the table name.
func (Material) TableName() string {
	return "materials"
}

// Tag is a free-form product label.
type Tag struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;not null;size:100"`
}

// TableName overrides the table name.
func (Tag) TableName() string {
	return "tags"
}

// Product is the main catalog entity. The id is supplied by the source
// and never regenerated; re-syncing the same id overwrites in place.
type Product struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name            string    `gorm:"column:name;not null"`
	CategoryID      *uint     `gorm:"column:category_id;not null;index:idx_products_category"`
	BrandID         *uint     `gorm:"column:brand_id;not null;index:idx_products_brand"`
	Model           *string   `gorm:"column:model"`
	Gender          *string   `gorm:"column:gender"`
	SkillLevel      *string   `gorm:"column:skill_level"`
	Color           *string   `gorm:"column:color"`
	Size            *string   `gorm:"column:size"`
	LengthCm        *int      `gorm:"column:length_cm"`
	WeightKg        *float64  `gorm:"column:weight_kg"`
	Price           float64   `gorm:"column:price;not null;check:price > 0;index:idx_products_price"`
	DiscountPercent int       `gorm:"column:discount_percent;default:0;check:discount_percent BETWEEN 0 AND 100"`
	MaterialID      *uint     `gorm:"column:material_id"`
	ReleaseYear     *int      `gorm:"column:release_year"`
	Season          *string   `gorm:"column:season"`
	WarrantyMonths  int       `gorm:"column:warranty_months;default:12"`
	SKU             *string   `gorm:"column:sku;uniqueIndex"`
	Barcode         *string   `gorm:"column:barcode;uniqueIndex"`
	IsActive        bool      `gorm:"column:is_active;default:true;index:idx_products_active"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Brand    *Brand    `gorm:"foreignKey:BrandID"`
	Material *Material `gorm:"foreignKey:MaterialID"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// Inventory is the one-to-one stock record for a product.
type Inventory struct {
	ProductID        int64     `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	StockQuantity    int       `gorm:"column:stock_quantity;not null;default:0"`
	ReservedQuantity int       `gorm:"column:reserved_quantity;default:0"`
	ReorderPoint     int       `gorm:"column:reorder_point;default:10"`
	LastUpdated      time.Time `gorm:"column:last_updated;autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName overrides the table name.
func (Inventory) TableName() string {
	return "inventory"
}

// ProductRating is the one-to-one rating aggregate for a product.
type ProductRating struct {
	ProductID     int64     `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	AverageRating float64   `gorm:"column:average_rating;check:average_rating BETWEEN 0.0 AND 5.0"`
	TotalReviews  int       `gorm:"column:total_reviews;default:0"`
	LastUpdated   time.Time `gorm:"column:last_updated;autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName overrides the table name.
func (ProductRating) TableName() string {
	return "product_ratings"
}

// ProductTag links a product to a tag. Composite primary key, no duplicates.
type ProductTag struct {
	ProductID int64 `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	TagID     uint  `gorm:"column:tag_id;primaryKey;autoIncrement:false"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Tag     *Tag     `gorm:"foreignKey:TagID"`
}

// TableName overrides the table name.
func (ProductTag) TableName() string {
	return "product_tags"
}
