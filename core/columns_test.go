package core

import (
	"testing"

	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnKeys(cols []grid.Column) []string {
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	return keys
}

func findCol(t *testing.T, cols []grid.Column, key string) grid.Column {
	t.Helper()
	for _, c := range cols {
		if c.Key == key {
			return c
		}
	}
	t.Fatalf("column %s not found", key)
	return grid.Column{}
}

func TestBuildColumnsHitters(t *testing.T) {
	cols := BuildColumns(schema.DefaultStatConfigs(false), ColumnOptions{Mode: schema.ThreeLineMode})
	assert.Equal(t, []string{
		schema.KeyPosition, schema.KeyName, schema.KeyTeam, schema.KeyPeriod,
		"G", "AB", "H", "R", "HR", "RBI", "SB", "AVG",
	}, columnKeys(cols))

	assert.False(t, findCol(t, cols, schema.KeyPeriod).Sortable)
	assert.True(t, findCol(t, cols, "AVG").Sortable)
	for _, c := range cols {
		assert.GreaterOrEqual(t, c.Width, grid.MinColumnWidth, c.Key)
	}
}

func TestBuildColumnsAccruedOnlyPitchersWithMoney(t *testing.T) {
	cols := BuildColumns(schema.DefaultStatConfigs(true), ColumnOptions{
		Mode:      schema.AccruedOnlyMode,
		IsPitcher: true,
		Money:     true,
	})
	keys := columnKeys(cols)
	assert.NotContains(t, keys, schema.KeyPeriod)
	assert.Equal(t, []string{"G", "GS"}, keys[3:5])
	assert.Equal(t, []string{schema.KeyPrice, schema.KeySalary, schema.KeyContract}, keys[len(keys)-3:])
}

func TestIdentityCellsOnlyOnIdentityRow(t *testing.T) {
	price := 12.0
	e := &schema.Entity{Name: "Aaron Judge", Team: "NYY", Price: &price}
	cols := BuildColumns(nil, ColumnOptions{Mode: schema.ThreeLineMode, Money: true, Abbreviate: true})

	season := schema.DisplayRow{StatType: schema.SeasonRow, Entity: e, Position: "OF"}
	rolling := schema.DisplayRow{StatType: schema.RollingRow, Entity: e, Position: "OF"}

	pos := findCol(t, cols, schema.KeyPosition)
	assert.Equal(t, "", pos.Cell(season, 0))
	assert.Equal(t, "OF", pos.Cell(rolling, 1))

	assert.Equal(t, "A. Judge", findCol(t, cols, schema.KeyName).Cell(rolling, 1))
	assert.Equal(t, "$12", findCol(t, cols, schema.KeyPrice).Cell(rolling, 1))
	assert.Equal(t, "-", findCol(t, cols, schema.KeySalary).Cell(rolling, 1))
	assert.Equal(t, "Season", findCol(t, cols, schema.KeyPeriod).Cell(season, 0))
}

func TestStatColumnFormatting(t *testing.T) {
	ab, h := 16.0, 5.0
	e := &schema.Entity{Stats: map[schema.StatPeriod]schema.Snapshot{
		schema.AccruedPeriod: {"AB": &ab, "H": &h, "AVG": ptr(0.3125)},
	}}
	cols := BuildColumns(schema.DefaultStatConfigs(false), ColumnOptions{Mode: schema.AccruedOnlyMode})
	r := schema.DisplayRow{StatType: schema.AccruedRow, Entity: e}

	assert.Equal(t, ".313", findCol(t, cols, "AVG").Cell(r, 0))
	assert.Equal(t, "16", findCol(t, cols, "AB").Cell(r, 0))
	assert.Equal(t, "-", findCol(t, cols, "HR").Cell(r, 0))

	empty := schema.DisplayRow{StatType: schema.AccruedRow}
	assert.Equal(t, "-", findCol(t, cols, "AVG").Cell(empty, 0))
}

func TestDescribeColumns(t *testing.T) {
	cols := BuildColumns(schema.DefaultStatConfigs(false), ColumnOptions{Mode: schema.ThreeLineMode})
	entries := DescribeColumns(cols)
	require.Len(t, entries, len(cols))

	byKey := map[string]string{}
	for _, e := range entries {
		byKey[e.Key] = e.Description
	}
	assert.Equal(t, "Home Runs", byKey["HR"])
	assert.Equal(t, "Roster Position", byKey[schema.KeyPosition])
}

func ptr(v float64) *float64 { return &v }
