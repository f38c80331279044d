package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowOf(values map[string]string) Row {
	return Row{values: values}
}

func TestDecoder_Defaults(t *testing.T) {
	d := NewDecoder(rowOf(map[string]string{}))

	assert.Equal(t, 0, d.Int(ColDiscount, 0))
	assert.Equal(t, 12, d.Int(ColWarranty, 12))
	assert.Equal(t, 0.0, d.Float(ColRating, 0))
	assert.Nil(t, d.IntPtr(ColLengthCm))
	assert.Nil(t, d.StrPtr(ColColor))
	assert.True(t, d.Bool(ColActive, true))
	assert.NoError(t, d.Err())
}

func TestDecoder_Values(t *testing.T) {
	d := NewDecoder(rowOf(map[string]string{
		ColPrice:    "499.99",
		ColStock:    "10",
		ColLengthCm: "170",
		ColWeightKg: "3.4",
		ColColor:    " Blue ",
	}))

	assert.Equal(t, 499.99, d.Float(ColPrice, 0))
	assert.Equal(t, 10, d.Int(ColStock, 0))

	length := d.IntPtr(ColLengthCm)
	if assert.NotNil(t, length) {
		assert.Equal(t, 170, *length)
	}

	weight := d.FloatPtr(ColWeightKg)
	if assert.NotNil(t, weight) {
		assert.Equal(t, 3.4, *weight)
	}

	color := d.StrPtr(ColColor)
	if assert.NotNil(t, color) {
		assert.Equal(t, "Blue", *color)
	}

	assert.NoError(t, d.Err())
}

func TestDecoder_BoolTokens(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Y", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := NewDecoder(rowOf(map[string]string{ColActive: tt.value}))
			assert.Equal(t, tt.want, d.Bool(ColActive, true))
		})
	}
}

func TestDecoder_SpreadsheetIntegers(t *testing.T) {
	// Cell readers format numeric cells as "12.0"; those still decode
	// as integers, while true fractions do not.
	d := NewDecoder(rowOf(map[string]string{ColStock: "12.0"}))
	assert.Equal(t, 12, d.Int(ColStock, 0))
	assert.NoError(t, d.Err())

	d = NewDecoder(rowOf(map[string]string{ColStock: "12.5"}))
	d.Int(ColStock, 0)
	assert.Error(t, d.Err())
}

func TestDecoder_StickyError(t *testing.T) {
	d := NewDecoder(rowOf(map[string]string{
		ColPrice: "not-a-number",
		ColStock: "also-bad",
	}))

	d.Float(ColPrice, 0)
	d.Int(ColStock, 0)

	err := d.Err()
	assert.Error(t, err)
	// Only the first failure is reported.
	assert.Contains(t, err.Error(), ColPrice)
}
