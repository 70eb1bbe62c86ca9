package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
)

// RosterVersion is the format version of stored roster values.
const RosterVersion = 1

// Load reads the roster stored under team.
func Load(ctx context.Context, rs contract.RosterStore, team string) ([]schema.RosterSlot, error) {
	value, version, _, err := rs.Get(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for team %q: %w", team, err)
	}
	if version != RosterVersion {
		return nil, fmt.Errorf("roster for team %q has format version %d, expected %d. Re-import it", team, version, RosterVersion)
	}
	var slots []schema.RosterSlot
	if err := json.Unmarshal(value, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode roster for team %q: %w", team, err)
	}
	return slots, nil
}

// Save stores slots under team as they are.
func Save(ctx context.Context, rs contract.RosterStore, team string, slots []schema.RosterSlot) error {
	value, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := rs.Set(ctx, team, value, RosterVersion, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to store roster for team %q: %w", team, err)
	}
	return nil
}

// Import stores slots under team, giving every entity without an ID a new
// UUID. The input is not modified. It returns how many IDs were assigned.
func Import(ctx context.Context, rs contract.RosterStore, team string, slots []schema.RosterSlot) (int, error) {
	stored := make([]schema.RosterSlot, len(slots))
	assigned := 0
	for i, slot := range slots {
		stored[i] = slot
		if slot.Entity == nil {
			continue
		}
		entity := *slot.Entity
		if entity.ID == "" {
			entity.ID = uuid.NewString()
			assigned++
		}
		stored[i].Entity = &entity
	}
	if err := Save(ctx, rs, team, stored); err != nil {
		return 0, err
	}
	return assigned, nil
}
