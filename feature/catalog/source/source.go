package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names recognized in the source header. Anything else is ignored.
const (
	ColID           = "Id"
	ColProductName  = "ProductName"
	ColPrice        = "Price"
	ColStock        = "Stock"
	ColCategory     = "Category"
	ColBrand        = "Brand"
	ColModel        = "Model"
	ColGender       = "Gender"
	ColLevel        = "Level"
	ColColor        = "Color"
	ColSize         = "Size"
	ColLengthCm     = "LengthCm"
	ColDiscount     = "DiscountPercent"
	ColRating       = "Rating"
	ColWeightKg     = "WeightKg"
	ColReleaseYear  = "ReleaseYear"
	ColSeason       = "Season"
	ColWarranty     = "WarrantyMonths"
	ColMaterial     = "Material"
	ColCountry      = "CountryOfOrigin"
	ColSKU          = "SKU"
	ColBarcode      = "Barcode"
	ColActive       = "Active"
	ColTags         = "Tags"
	ColTotalReviews = "TotalReviews"
)

// RequiredColumns must all be present in the header or the whole run
// aborts before any store mutation.
var RequiredColumns = []string{ColID, ColProductName, ColPrice, ColStock}

// Row is one source row. Values are keyed by the normalized column header.
// A column that is missing from the sheet, or whose cell is blank, reads
// as absent; absence is distinct from a zero or empty value.
type Row struct {
	values map[string]string
}

// Get returns the trimmed cell value for the column and whether it is set.
func (r Row) Get(col string) (string, bool) {
	v, ok := r.values[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// Sheet is an ordered, restartable sequence of source rows.
type Sheet struct {
	// Columns are the normalized header names in source order.
	Columns []string

	rows []Row
}

// Rows returns the rows in source order.
func (s *Sheet) Rows() []Row {
	return s.rows
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// Load parses the source file into a Sheet. The parser is selected by
// file extension; unsupported extensions fail fast. The required columns
// are validated here so a malformed source aborts before any write.
func Load(path string) (*Sheet, error) {
	var (
		records [][]string
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		records, err = loadExcel(path)
	case ".csv":
		records, err = loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file extension %q: use .xlsx or .csv", ext)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("source file %s has no header row", path)
	}

	// Normalize headers by trimming whitespace.
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	var missing []string
	for _, req := range RequiredColumns {
		found := false
		for _, h := range header {
			if h == req {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %v", missing)
	}

	sheet := &Sheet{Columns: header}
	for _, record := range records[1:] {
		values := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" || i >= len(record) {
				continue
			}
			values[h] = record[i]
		}
		sheet.rows = append(sheet.rows, Row{values: values})
	}

	return sheet, nil
}

// loadExcel reads the first worksheet of an xlsx/xlsm workbook.
func loadExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// loadCSV reads a comma-delimited file.
func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are tolerated; short rows read as absent cells.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}
	return records, nil
}
