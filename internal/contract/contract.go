// Package contract provides interfaces and shared utilities for statgrid's internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/statgrid/schema"
)

// StoreManager hands out the persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetRosterStore() RosterStore
	GetHistoryStore() HistoryStore
}

// RosterStore persists serialized roster snapshots keyed by team.
type RosterStore interface {
	// Get returns the stored value, its format version and the unix timestamp it was written at.
	Get(ctx context.Context, team string) ([]byte, int, int64, error)

	// Set inserts or replaces the roster stored under team.
	Set(ctx context.Context, team string, value []byte, version int, timestamp int64) error

	// Teams lists every stored team key in sorted order.
	Teams(ctx context.Context) ([]string, error)

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// HistoryStore records computed team totals over time.
type HistoryStore interface {
	// RecordTotals stores one totals row and returns its run ID.
	RecordTotals(ctx context.Context, run schema.TotalsRunRecord, totals schema.AggregationResult) (int64, error)

	// GetStatus returns status information about the history store.
	GetStatus(ctx context.Context) (schema.HistoryStatus, error)

	// GetAllRuns retrieves every recorded run, oldest first.
	GetAllRuns(ctx context.Context) ([]schema.TotalsRunRecord, error)

	// GetAllValues retrieves every recorded totals value ordered by run and field.
	GetAllValues(ctx context.Context) ([]schema.TotalsValueRecord, error)

	// Close closes the underlying connection.
	Close() error
}

// RowActions are the per-row hooks a grid exposes next to the identity cells.
// Implementations belong to the caller; the grid only invokes them.
type RowActions interface {
	// Drop releases the entity held by a roster slot.
	Drop(ctx context.Context, row schema.DisplayRow) error

	// Move reassigns the entity of a slot to another roster position.
	Move(ctx context.Context, row schema.DisplayRow, position string) error
}
