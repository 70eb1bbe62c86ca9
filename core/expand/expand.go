// Package expand turns roster slots into the synthetic display rows of the grid.
package expand

import (
	"strconv"

	"github.com/huangsam/statgrid/schema"
)

// Expand emits display rows for each slot, in slot order.
// Three-line mode yields season, rolling and accrued rows per slot; accrued-only
// mode yields one accrued row. Empty slots are never dropped, so the row count is
// always rowsPerSlot * len(slots).
func Expand(slots []schema.RosterSlot, mode schema.DisplayMode) []schema.DisplayRow {
	types := RowTypes(mode)
	rows := make([]schema.DisplayRow, 0, len(types)*len(slots))
	for i, slot := range slots {
		for _, t := range types {
			rows = append(rows, schema.DisplayRow{
				ID:        rowID(i, slot.Entity, t),
				StatType:  t,
				Entity:    slot.Entity,
				Position:  slot.Position,
				SlotIndex: i,
			})
		}
	}
	return rows
}

// RowTypes returns the row tags emitted per slot for a mode.
func RowTypes(mode schema.DisplayMode) []schema.StatType {
	if mode == schema.AccruedOnlyMode {
		return []schema.StatType{schema.AccruedRow}
	}
	return schema.ThreeLineOrder
}

// IdentityRow reports whether a row carries the slot's identity cells (position,
// team, price, salary, contract, actions). In three-line mode that is the rolling
// row so the cells sit centered in the block.
func IdentityRow(row schema.DisplayRow, mode schema.DisplayMode) bool {
	if mode == schema.AccruedOnlyMode {
		return true
	}
	return row.StatType == schema.RollingRow
}

// FromEntities wraps a free-agent style entity list as slots positioned by
// each entity's own position.
func FromEntities(entities []*schema.Entity) []schema.RosterSlot {
	slots := make([]schema.RosterSlot, len(entities))
	for i, e := range entities {
		pos := ""
		if e != nil {
			pos = e.Position
		}
		slots[i] = schema.RosterSlot{Position: pos, Entity: e}
	}
	return slots
}

// rowID builds a stable row identifier from the slot and entity.
func rowID(slot int, e *schema.Entity, t schema.StatType) string {
	id := "slot" + strconv.Itoa(slot)
	if e != nil && e.ID != "" {
		id = e.ID + "@" + id
	}
	return id + "-" + string(t)
}
