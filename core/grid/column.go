// Package grid is the column-driven table engine: column model, tri-state
// sorting and interactive column resizing.
package grid

import (
	"github.com/huangsam/statgrid/core/statfmt"
	"github.com/huangsam/statgrid/schema"
)

// Width constants in display units.
const (
	MinColumnWidth     = 25
	DefaultColumnWidth = 60
)

// Row is the record type every column reads from.
type Row = schema.DisplayRow

// RenderFunc turns a column value into display text. The signature is fixed
// across all columns so the engine stays agnostic to column semantics.
type RenderFunc func(value any, row Row, index int) string

// Column is the declarative descriptor for one grid column.
type Column struct {
	Key      string
	Title    string
	Width    int
	Sortable bool
	// SortValue overrides the value used for ordering.
	SortValue func(row Row) any
	// Render formats the cell. Nil renders with statfmt.FormatValue.
	Render RenderFunc
	// Accessor overrides how the cell value is read. Nil reads row.Field(Key).
	Accessor func(row Row) any
}

// ClampWidth applies the minimum column width.
func ClampWidth(width int) int {
	return max(width, MinColumnWidth)
}

// Value reads the cell value for a row.
func (c Column) Value(row Row) any {
	if c.Accessor != nil {
		return c.Accessor(row)
	}
	return row.Field(c.Key)
}

// Cell renders the cell text for a row at the given display index.
func (c Column) Cell(row Row, index int) string {
	v := c.Value(row)
	if c.Render != nil {
		return c.Render(v, row, index)
	}
	return statfmt.FormatValue(v, 0)
}

// findColumn returns the column with the given key.
func findColumn(columns []Column, key string) (Column, bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
