package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeTempCSV(t,
		"Id,ProductName,Price,Stock,Category\n"+
			"1,Alpine Ski,499.99,10,Skis\n"+
			"2,Helmet,89.50,25,Ski Helmet\n")

	sheet, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sheet.Len())

	row := sheet.Rows()[0]
	name, ok := row.Get(ColProductName)
	assert.True(t, ok)
	assert.Equal(t, "Alpine Ski", name)

	category, ok := row.Get(ColCategory)
	assert.True(t, ok)
	assert.Equal(t, "Skis", category)
}

func TestLoad_TrimsHeaders(t *testing.T) {
	path := writeTempCSV(t,
		" Id , ProductName ,Price,Stock\n"+
			"1,Poles,19.99,5\n")

	sheet, err := Load(path)
	require.NoError(t, err)

	id, ok := sheet.Rows()[0].Get(ColID)
	assert.True(t, ok)
	assert.Equal(t, "1", id)
}

func TestLoad_MissingRequiredColumns(t *testing.T) {
	path := writeTempCSV(t,
		"Id,ProductName,Stock\n"+
			"1,Poles,5\n")

	sheet, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, sheet)
	assert.Contains(t, err.Error(), "Price")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	if err := os.WriteFile(path, []byte("Id,ProductName,Price,Stock\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRow_AbsentMarker(t *testing.T) {
	// A blank cell and a missing column both read as absent, distinct
	// from a legitimate value.
	path := writeTempCSV(t,
		"Id,ProductName,Price,Stock,Color\n"+
			"1,Poles,19.99,5,\n"+
			"2,Goggles,49.99,3,Blue\n")

	sheet, err := Load(path)
	require.NoError(t, err)

	_, ok := sheet.Rows()[0].Get(ColColor)
	assert.False(t, ok)

	color, ok := sheet.Rows()[1].Get(ColColor)
	assert.True(t, ok)
	assert.Equal(t, "Blue", color)

	_, ok = sheet.Rows()[0].Get(ColSeason)
	assert.False(t, ok)
}

func TestLoad_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")

	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	rows := [][]any{
		{"Id", "ProductName", "Price", "Stock", "Tags"},
		{1, "Alpine Ski", 499.99, 10, "racing;carving"},
		{2, "Helmet", 89.5, 25, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	sheet, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sheet.Len())

	price, ok := sheet.Rows()[0].Get(ColPrice)
	assert.True(t, ok)
	assert.Equal(t, "499.99", price)

	tags, ok := sheet.Rows()[0].Get(ColTags)
	assert.True(t, ok)
	assert.Equal(t, "racing;carving", tags)

	_, ok = sheet.Rows()[1].Get(ColTags)
	assert.False(t, ok)
}
