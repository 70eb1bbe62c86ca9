package grid

import (
	"testing"

	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridColumns() []Column {
	return []Column{
		{Key: schema.KeyName, Title: "Player", Width: 120, Sortable: true},
		{Key: "HR", Title: "HR", Width: 40, Sortable: true},
		{Key: schema.KeyPeriod, Title: "Period", Width: 45},
	}
}

func gridRows() []Row {
	return []Row{
		row("a", 0, schema.AccruedRow, player("Alpha", num(5))),
		row("b", 1, schema.AccruedRow, player("Bravo", num(15))),
		row("c", 2, schema.AccruedRow, nil),
	}
}

func TestClickHeaderCycle(t *testing.T) {
	var seen []*schema.SortState
	g := New(gridColumns(), WithSortListener(func(s *schema.SortState) { seen = append(seen, s) }))
	assert.Nil(t, g.SortState())

	assert.Equal(t, schema.Ascending, g.ClickHeader("HR").Direction)
	assert.Equal(t, schema.Descending, g.ClickHeader("HR").Direction)
	assert.Nil(t, g.ClickHeader("HR"))
	assert.Len(t, seen, 3)
	assert.Nil(t, seen[2])
}

func TestClickHeaderIgnoresNonSortable(t *testing.T) {
	g := New(gridColumns(), WithSortState(&schema.SortState{Key: "HR", Direction: schema.Descending}))

	state := g.ClickHeader(schema.KeyPeriod)
	require.NotNil(t, state)
	assert.Equal(t, "HR", state.Key, "non-sortable columns do not change the sort")

	state = g.ClickHeader("missing")
	assert.Equal(t, "HR", state.Key)
}

func TestRender(t *testing.T) {
	g := New(gridColumns(), WithSortState(&schema.SortState{Key: "HR", Direction: schema.Descending}))
	table := g.Render(gridRows())

	assert.Equal(t, []string{schema.KeyName, "HR", schema.KeyPeriod}, table.Keys)
	assert.Equal(t, []string{"Player", "HR", "Period"}, table.Headers)
	assert.Equal(t, []int{120, 40, 45}, table.Widths)
	assert.Equal(t, []string{"b", "a", "c"}, table.RowIDs)
	assert.Equal(t, []string{"Bravo", "15", "Accrued"}, table.Rows[0])
	assert.Equal(t, []string{"-", "-", "Accrued"}, table.Rows[2])
	assert.Nil(t, table.Footer)
}

func TestRenderReflectsResizedWidths(t *testing.T) {
	g := New(gridColumns())
	require.NoError(t, g.Widths().PointerDown("HR", 10))
	_, err := g.Widths().PointerMove(30)
	require.NoError(t, err)
	require.NoError(t, g.Widths().PointerUp())

	assert.Equal(t, []int{120, 60, 45}, g.Render(gridRows()).Widths)
}

func TestWithRegistryTracksDrag(t *testing.T) {
	reg := &countingRegistry{}
	g := New(gridColumns(), WithRegistry(reg))

	require.NoError(t, g.Widths().PointerDown("HR", 0))
	assert.Equal(t, 1, reg.active)
	require.NoError(t, g.Widths().PointerUp())
	assert.Equal(t, 0, reg.active)
	assert.Equal(t, 1, reg.acquired)
}

func TestRenderPassesDisplayIndex(t *testing.T) {
	cols := []Column{{
		Key:    "idx",
		Render: func(_ any, _ Row, index int) string { return string(rune('0' + index)) },
	}}
	table := New(cols).Render(gridRows())
	assert.Equal(t, [][]string{{"0"}, {"1"}, {"2"}}, table.Rows)
}

func TestOrderGrouped(t *testing.T) {
	e := player("Solo", num(1))
	rows := []Row{
		row("x-season", 0, schema.SeasonRow, nil),
		row("x-rolling", 0, schema.RollingRow, nil),
		row("x-accrued", 0, schema.AccruedRow, nil),
		row("y-season", 1, schema.SeasonRow, e),
		row("y-rolling", 1, schema.RollingRow, e),
		row("y-accrued", 1, schema.AccruedRow, e),
	}
	g := New(gridColumns(), WithGrouping(schema.AccruedRow), WithSortState(&schema.SortState{Key: "HR", Direction: schema.Ascending}))
	assert.Equal(t, []string{"y-season", "y-rolling", "y-accrued", "x-season", "x-rolling", "x-accrued"}, ids(g.Order(rows)))
}

func TestColumnCell(t *testing.T) {
	r := row("a", 0, schema.AccruedRow, player("Alpha", num(5)))

	plain := Column{Key: "HR"}
	assert.Equal(t, "5", plain.Cell(r, 0))

	custom := Column{Key: "HR", Accessor: func(Row) any { return "fixed" }}
	assert.Equal(t, "fixed", custom.Cell(r, 0))
}
