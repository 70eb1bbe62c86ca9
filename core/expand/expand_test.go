package expand

import (
	"testing"

	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlots() []schema.RosterSlot {
	return []schema.RosterSlot{
		{Position: "C", Entity: &schema.Entity{ID: "smith", Name: "Will Smith"}},
		{Position: "OF"},
		{Position: "UT", Entity: &schema.Entity{Name: "No Id"}},
	}
}

func TestExpandThreeLine(t *testing.T) {
	rows := Expand(testSlots(), schema.ThreeLineMode)
	require.Len(t, rows, 9)

	for i, r := range rows {
		assert.Equal(t, schema.ThreeLineOrder[i%3], r.StatType)
		assert.Equal(t, i/3, r.SlotIndex)
	}
	assert.Equal(t, "smith@slot0-season", rows[0].ID)
	assert.Equal(t, "slot1-rolling", rows[4].ID)
	assert.Equal(t, "slot2-accrued", rows[8].ID)
	assert.Nil(t, rows[3].Entity, "empty slots keep their rows")
	assert.Equal(t, "OF", rows[5].Position)
}

func TestExpandAccruedOnly(t *testing.T) {
	rows := Expand(testSlots(), schema.AccruedOnlyMode)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, schema.AccruedRow, r.StatType)
	}
}

func TestExpandEmpty(t *testing.T) {
	assert.Empty(t, Expand(nil, schema.ThreeLineMode))
}

func TestRowIDsUnique(t *testing.T) {
	slots := []schema.RosterSlot{{Position: "BN"}, {Position: "BN"}}
	rows := Expand(slots, schema.ThreeLineMode)
	seen := map[string]bool{}
	for _, r := range rows {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestRowTypes(t *testing.T) {
	assert.Equal(t, schema.ThreeLineOrder, RowTypes(schema.ThreeLineMode))
	assert.Equal(t, schema.ThreeLineOrder, RowTypes(""))
	assert.Equal(t, []schema.StatType{schema.AccruedRow}, RowTypes(schema.AccruedOnlyMode))
}

func TestIdentityRow(t *testing.T) {
	assert.True(t, IdentityRow(schema.DisplayRow{StatType: schema.RollingRow}, schema.ThreeLineMode))
	assert.False(t, IdentityRow(schema.DisplayRow{StatType: schema.SeasonRow}, schema.ThreeLineMode))
	assert.False(t, IdentityRow(schema.DisplayRow{StatType: schema.AccruedRow}, schema.ThreeLineMode))
	assert.True(t, IdentityRow(schema.DisplayRow{StatType: schema.AccruedRow}, schema.AccruedOnlyMode))
}

func TestFromEntities(t *testing.T) {
	slots := FromEntities([]*schema.Entity{
		{Name: "Free Agent", Position: "SS"},
		nil,
	})
	require.Len(t, slots, 2)
	assert.Equal(t, "SS", slots[0].Position)
	assert.Equal(t, "", slots[1].Position)
	assert.Nil(t, slots[1].Entity)
}
