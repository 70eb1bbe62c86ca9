package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
)

// ErrEmptySlot is returned when a row action targets a slot without an entity.
var ErrEmptySlot = errors.New("slot has no player")

// RosterActions applies row actions to a roster kept in memory and, when a
// store is set, writes the result back under the team key.
type RosterActions struct {
	Slots []schema.RosterSlot
	store contract.RosterStore
	team  string
}

var _ contract.RowActions = &RosterActions{} // Compile-time check

// NewRosterActions returns actions over slots. A nil store keeps changes in memory.
func NewRosterActions(slots []schema.RosterSlot, rs contract.RosterStore, team string) *RosterActions {
	return &RosterActions{Slots: slots, store: rs, team: team}
}

// Drop empties the slot the row belongs to.
func (a *RosterActions) Drop(ctx context.Context, row schema.DisplayRow) error {
	slot, err := a.slot(row)
	if err != nil {
		return err
	}
	slot.Entity = nil
	return a.persist(ctx)
}

// Move reassigns the slot's player to the first empty slot at position.
// With no empty slot at that position the two players swap.
func (a *RosterActions) Move(ctx context.Context, row schema.DisplayRow, position string) error {
	from, err := a.slot(row)
	if err != nil {
		return err
	}
	position = strings.TrimSpace(position)
	if position == "" {
		return errors.New("move needs a target position")
	}

	target := -1
	for i := range a.Slots {
		if i == row.SlotIndex || !strings.EqualFold(a.Slots[i].Position, position) {
			continue
		}
		if a.Slots[i].Entity == nil {
			target = i
			break
		}
		if target < 0 {
			target = i
		}
	}
	if target < 0 {
		return fmt.Errorf("no roster slot at position %q", position)
	}

	to := &a.Slots[target]
	from.Entity, to.Entity = to.Entity, from.Entity
	return a.persist(ctx)
}

// slot resolves the roster slot a display row was expanded from.
func (a *RosterActions) slot(row schema.DisplayRow) (*schema.RosterSlot, error) {
	if row.SlotIndex < 0 || row.SlotIndex >= len(a.Slots) {
		return nil, fmt.Errorf("row %s points at slot %d outside the roster", row.ID, row.SlotIndex)
	}
	slot := &a.Slots[row.SlotIndex]
	if slot.Entity == nil {
		return nil, ErrEmptySlot
	}
	return slot, nil
}

// persist writes the roster back when backed by a store.
func (a *RosterActions) persist(ctx context.Context) error {
	if a.store == nil || a.team == "" {
		return nil
	}
	return Save(ctx, a.store, a.team, a.Slots)
}
