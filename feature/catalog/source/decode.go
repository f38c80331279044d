package source

import (
	"fmt"
	"strconv"
	"strings"
)

// Decoder provides typed access to one row's fields. Each accessor returns
// the parsed value, or the given default when the column is absent. The
// first parse failure is recorded and surfaced once through Err; callers
// decode every field of a row and then check the error a single time.
type Decoder struct {
	row Row
	err error
}

// NewDecoder binds a decoder to one row.
func NewDecoder(row Row) *Decoder {
	return &Decoder{row: row}
}

// Err returns the first parse error encountered, if any.
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) fail(col, val string, cause error) {
	if d.err == nil {
		d.err = fmt.Errorf("column %s: invalid value %q: %w", col, val, cause)
	}
}

// Str returns the string value, or def when absent.
func (d *Decoder) Str(col, def string) string {
	v, ok := d.row.Get(col)
	if !ok {
		return def
	}
	return v
}

// StrPtr returns the string value, or nil when absent.
func (d *Decoder) StrPtr(col string) *string {
	v, ok := d.row.Get(col)
	if !ok {
		return nil
	}
	return &v
}

// Int returns the integer value, or def when absent.
func (d *Decoder) Int(col string, def int) int {
	v, ok := d.row.Get(col)
	if !ok {
		return def
	}
	n, err := parseInt(v)
	if err != nil {
		d.fail(col, v, err)
		return def
	}
	return n
}

// IntPtr returns the integer value, or nil when absent.
func (d *Decoder) IntPtr(col string) *int {
	v, ok := d.row.Get(col)
	if !ok {
		return nil
	}
	n, err := parseInt(v)
	if err != nil {
		d.fail(col, v, err)
		return nil
	}
	return &n
}

// Int64 returns the 64-bit integer value, or def when absent.
func (d *Decoder) Int64(col string, def int64) int64 {
	v, ok := d.row.Get(col)
	if !ok {
		return def
	}
	n, err := parseInt(v)
	if err != nil {
		d.fail(col, v, err)
		return def
	}
	return int64(n)
}

// Float returns the float value, or def when absent.
func (d *Decoder) Float(col string, def float64) float64 {
	v, ok := d.row.Get(col)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.fail(col, v, err)
		return def
	}
	return f
}

// FloatPtr returns the float value, or nil when absent.
func (d *Decoder) FloatPtr(col string) *float64 {
	v, ok := d.row.Get(col)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.fail(col, v, err)
		return nil
	}
	return &f
}

// Bool returns the boolean value, or def when absent. The tokens
// "1", "true", "yes" and "y" (case-insensitive) read as true; any other
// present token reads as false.
func (d *Decoder) Bool(col string, def bool) bool {
	v, ok := d.row.Get(col)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// parseInt accepts plain integers as well as spreadsheet-formatted
// numbers like "12.0", which cell readers commonly emit for numeric cells.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("not an integer")
	}
	return int(f), nil
}
