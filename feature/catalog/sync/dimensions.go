package sync

import (
	"fmt"
	"strings"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Dimension identifies one of the closed set of lookup tables. Each kind
// maps statically to its model; no query is ever built from a table name
// taken from input.
type Dimension int

const (
	DimensionCategory Dimension = iota
	DimensionBrand
	DimensionMaterial
)

// String returns the dimension's table name.
func (d Dimension) String() string {
	switch d {
	case DimensionCategory:
		return "categories"
	case DimensionBrand:
		return "brands"
	case DimensionMaterial:
		return "materials"
	default:
		return "unknown"
	}
}

// dimensionKey keys the pass-scoped cache. Absent names never enter the
// cache, so a blank name cannot collide with a real record.
type dimensionKey struct {
	dim  Dimension
	name string
}

// Resolver maps dimension names to stable row ids with get-or-create
// semantics. Each distinct (kind, name) pair hits storage once per pass;
// the cache is pass-scoped and rebuilt for every pass, because the ids
// are already durable in the store.
type Resolver struct {
	db    *gorm.DB
	cache map[dimensionKey]uint
}

// NewResolver creates a resolver with an empty pass-scoped cache.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db:    db,
		cache: make(map[dimensionKey]uint),
	}
}

// Resolve returns the id for a dimension name, creating the row on first
// sight. An absent or blank name resolves to no id (nil), which the
// product row stores as a null reference.
func (r *Resolver) Resolve(dim Dimension, name string) (*uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	key := dimensionKey{dim: dim, name: name}
	if id, ok := r.cache[key]; ok {
		return &id, nil
	}

	id, err := r.getOrCreate(dim, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s %q: %w", dim, name, err)
	}

	r.cache[key] = id
	return &id, nil
}

// getOrCreate inserts the name ignoring a duplicate-name conflict, then
// reads the id back. Insert-or-ignore followed by read-back converges to
// one id even if two writers race on the same new name.
func (r *Resolver) getOrCreate(dim Dimension, name string) (uint, error) {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}

	switch dim {
	case DimensionCategory:
		if err := r.db.Clauses(onConflict).Create(&models.Category{Name: name}).Error; err != nil {
			return 0, err
		}
		var row models.Category
		if err := r.db.Where("name = ?", name).Take(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil

	case DimensionBrand:
		if err := r.db.Clauses(onConflict).Create(&models.Brand{Name: name}).Error; err != nil {
			return 0, err
		}
		var row models.Brand
		if err := r.db.Where("name = ?", name).Take(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil

	case DimensionMaterial:
		if err := r.db.Clauses(onConflict).Create(&models.Material{Name: name}).Error; err != nil {
			return 0, err
		}
		var row models.Material
		if err := r.db.Where("name = ?", name).Take(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil

	default:
		return 0, fmt.Errorf("unknown dimension kind %d", dim)
	}
}
