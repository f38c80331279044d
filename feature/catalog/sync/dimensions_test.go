package sync

import (
	"testing"

	"catalog-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_GetOrCreateDedup(t *testing.T) {
	db := setupTestDB(t, "resolver_dedup")
	require.NoError(t, models.EnsureSchema(db))

	resolver := NewResolver(db)

	first, err := resolver.Resolve(DimensionCategory, "Skis")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := resolver.Resolve(DimensionCategory, "Skis")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestResolver_BlankNameYieldsNoID(t *testing.T) {
	db := setupTestDB(t, "resolver_blank")
	require.NoError(t, models.EnsureSchema(db))

	resolver := NewResolver(db)

	id, err := resolver.Resolve(DimensionMaterial, "")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = resolver.Resolve(DimensionMaterial, "   ")
	require.NoError(t, err)
	assert.Nil(t, id)

	var count int64
	db.Model(&models.Material{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestResolver_KindsDoNotCollide(t *testing.T) {
	db := setupTestDB(t, "resolver_kinds")
	require.NoError(t, models.EnsureSchema(db))

	resolver := NewResolver(db)

	catID, err := resolver.Resolve(DimensionCategory, "Carbon")
	require.NoError(t, err)
	matID, err := resolver.Resolve(DimensionMaterial, "Carbon")
	require.NoError(t, err)

	var categories, materials int64
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.Material{}).Count(&materials)
	assert.Equal(t, int64(1), categories)
	assert.Equal(t, int64(1), materials)
	require.NotNil(t, catID)
	require.NotNil(t, matID)
}

func TestResolver_StableAcrossPasses(t *testing.T) {
	db := setupTestDB(t, "resolver_passes")
	require.NoError(t, models.EnsureSchema(db))

	first, err := NewResolver(db).Resolve(DimensionBrand, "Atomic")
	require.NoError(t, err)

	// A fresh resolver (new pass, empty cache) reads the durable id back.
	second, err := NewResolver(db).Resolve(DimensionBrand, "Atomic")
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}
