package grid

import (
	"github.com/huangsam/statgrid/schema"
)

// Table is the rendered output of a grid: header titles, cell text and widths.
type Table struct {
	Keys    []string
	Headers []string
	Widths  []int
	RowIDs  []string
	Rows    [][]string
	Footer  []string // totals row, nil when the table has none
}

// Option configures a Grid.
type Option func(*Grid)

// WithSortState starts the grid with an active sort instead of insertion order.
func WithSortState(state *schema.SortState) Option {
	return func(g *Grid) { g.sort = state }
}

// WithRegistry sets the listener registry used during column resizes.
func WithRegistry(r ListenerRegistry) Option {
	return func(g *Grid) { g.registry = r }
}

// WithGrouping keeps slot blocks together when sorting, comparing by the anchor row.
func WithGrouping(anchor schema.StatType) Option {
	return func(g *Grid) {
		g.grouped = true
		g.anchor = anchor
	}
}

// WithSortListener registers a callback run after every sort interaction.
func WithSortListener(fn func(*schema.SortState)) Option {
	return func(g *Grid) { g.onSort = append(g.onSort, fn) }
}

// Grid owns the interactive state of one table: its sort state and its column widths.
// A Grid is not safe for concurrent use.
type Grid struct {
	columns  []Column
	sort     *schema.SortState
	grouped  bool
	anchor   schema.StatType
	registry ListenerRegistry
	widths   *Negotiator
	onSort   []func(*schema.SortState)
}

// New creates a grid over the columns.
func New(columns []Column, opts ...Option) *Grid {
	g := &Grid{columns: columns, anchor: schema.AccruedRow}
	for _, opt := range opts {
		opt(g)
	}
	g.widths = NewNegotiator(columns, g.registry)
	return g
}

// Columns returns the column descriptors.
func (g *Grid) Columns() []Column { return g.columns }

// SortState returns the active sort state, nil when unsorted.
func (g *Grid) SortState() *schema.SortState { return g.sort }

// Widths exposes the width negotiator for pointer-driven resizes.
func (g *Grid) Widths() *Negotiator { return g.widths }

// ClickHeader applies a header click and returns the new sort state.
// Clicks on unknown or non-sortable columns leave the state unchanged.
func (g *Grid) ClickHeader(key string) *schema.SortState {
	col, ok := findColumn(g.columns, key)
	if !ok || !col.Sortable {
		return g.sort
	}
	g.sort = NextSortState(g.sort, key)
	for _, fn := range g.onSort {
		fn(g.sort)
	}
	return g.sort
}

// Order returns the rows in display order for the current sort state.
func (g *Grid) Order(rows []Row) []Row {
	if g.grouped {
		return SortGrouped(rows, g.sort, g.columns, g.anchor)
	}
	return Sort(rows, g.sort, g.columns)
}

// Render sorts the rows and renders every cell through its column.
func (g *Grid) Render(rows []Row) Table {
	ordered := g.Order(rows)
	t := Table{
		Keys:    make([]string, len(g.columns)),
		Headers: make([]string, len(g.columns)),
		Widths:  make([]int, len(g.columns)),
		RowIDs:  make([]string, len(ordered)),
		Rows:    make([][]string, len(ordered)),
	}
	for i, c := range g.columns {
		t.Keys[i] = c.Key
		t.Headers[i] = c.Title
		t.Widths[i] = g.widths.Width(c.Key)
	}
	for ri, r := range ordered {
		cells := make([]string, len(g.columns))
		for ci, c := range g.columns {
			cells[ci] = c.Cell(r, ri)
		}
		t.RowIDs[ri] = r.ID
		t.Rows[ri] = cells
	}
	return t
}
