package core

import (
	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/core/tooltip"
)

// DescribeColumns resolves the tooltip of every column. Columns without one
// keep an empty description.
func DescribeColumns(columns []grid.Column) []tooltip.Entry {
	entries := make([]tooltip.Entry, len(columns))
	for i, c := range columns {
		desc, _ := tooltip.Resolve(c.Title, c.Key)
		entries[i] = tooltip.Entry{Key: c.Key, Title: c.Title, Description: desc}
	}
	return entries
}
