package schema

import "time"

// StoreStatus represents the status of the roster store.
type StoreStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalRosters    int       `json:"total_rosters"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the totals history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
}

// TotalsRunRecord represents a row from the statgrid_totals_runs table.
type TotalsRunRecord struct {
	RunID       int64
	TeamKey     string
	IsPitcher   bool
	RecordedAt  time.Time
	EntityCount int32
}

// TotalsValueRecord represents a row from the statgrid_totals_values table.
type TotalsValueRecord struct {
	RunID int64
	Field string
	Value float64
}
