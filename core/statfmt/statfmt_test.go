package statfmt

import (
	"math"
	"testing"

	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    schema.Optional
		decimals int
		want     string
	}{
		{"integer", schema.Some(30), 0, "30"},
		{"two decimals", schema.Some(3), 2, "3.00"},
		{"half rounds up", schema.Some(0.3125), 3, "0.313"},
		{"half rounds away from zero", schema.Some(-2.5), 0, "-3"},
		{"decimals clamped high", schema.Some(1.23456), 7, "1.235"},
		{"decimals clamped low", schema.Some(12.6), -1, "13"},
		{"absent", schema.None(), 2, "-"},
		{"nan", schema.Some(math.NaN()), 2, "-"},
		{"infinite", schema.Some(math.Inf(1)), 0, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value, tt.decimals))
		})
	}
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, ".313", FormatAverage(schema.Some(0.3125)))
	assert.Equal(t, ".000", FormatAverage(schema.Some(0)))
	assert.Equal(t, "1.000", FormatAverage(schema.Some(1)))
	assert.Equal(t, "-.250", FormatAverage(schema.Some(-0.25)))
	assert.Equal(t, "-", FormatAverage(schema.None()))
}

func TestFormatStat(t *testing.T) {
	avg := schema.StatFieldConfig{Field: "AVG", IsRateStat: true, RateKind: schema.AVGRate, Decimals: 3}
	era := schema.StatFieldConfig{Field: "ERA", IsRateStat: true, RateKind: schema.ERARate, Decimals: 2}
	hr := schema.StatFieldConfig{Field: "HR"}

	assert.Equal(t, ".313", FormatStat(schema.Some(0.3125), avg))
	assert.Equal(t, "3.00", FormatStat(schema.Some(3), era))
	assert.Equal(t, "30", FormatStat(schema.Some(30), hr))
	assert.Equal(t, "-", FormatStat(schema.None(), era))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$25", FormatMoney(schema.Some(25)))
	assert.Equal(t, "$3", FormatMoney(schema.Some(2.5)))
	assert.Equal(t, "-$4", FormatMoney(schema.Some(-4)))
	assert.Equal(t, "-", FormatMoney(schema.None()))
}

type label string

func (l label) String() string { return "<" + string(l) + ">" }

func TestFormatValue(t *testing.T) {
	v := 4.5
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "-"},
		{"optional", schema.Some(2), "2"},
		{"float64", 12.0, "12"},
		{"float32", float32(3), "3"},
		{"int", 7, "7"},
		{"int64", int64(8), "8"},
		{"pointer", &v, "5"},
		{"nil pointer", (*float64)(nil), "-"},
		{"string", "OF", "OF"},
		{"empty string", "", "-"},
		{"stringer", label("x"), "<x>"},
		{"unsupported", struct{}{}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, 0))
		})
	}
}
