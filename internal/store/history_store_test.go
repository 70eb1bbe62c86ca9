package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	hs, err := NewHistoryStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = hs.Close() })
	return hs
}

func TestHistoryStoreSQLite(t *testing.T) {
	ctx := context.Background()
	hs := newTestHistoryStore(t)

	status, err := hs.GetStatus(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.TotalRuns)

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id1, err := hs.RecordTotals(ctx, schema.TotalsRunRecord{
		TeamKey: "bombers", RecordedAt: first, EntityCount: 14,
	}, schema.AggregationResult{"AVG": 0.3125, "HR": 30, "AB": 800})
	require.NoError(t, err)

	id2, err := hs.RecordTotals(ctx, schema.TotalsRunRecord{
		TeamKey: "bombers", IsPitcher: true, RecordedAt: first.Add(24 * time.Hour), EntityCount: 9,
	}, schema.AggregationResult{"ERA": 3})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	status, err = hs.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, id2, status.LastRunID)
	assert.True(t, status.LastRunTime.Equal(first.Add(24*time.Hour)))
	assert.True(t, status.OldestRunTime.Equal(first))

	runs, err := hs.GetAllRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "bombers", runs[0].TeamKey)
	assert.False(t, runs[0].IsPitcher)
	assert.True(t, runs[1].IsPitcher)
	assert.Equal(t, int32(14), runs[0].EntityCount)
	assert.True(t, runs[0].RecordedAt.Equal(first))

	values, err := hs.GetAllValues(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schema.TotalsValueRecord{
		{RunID: id1, Field: "AB", Value: 800},
		{RunID: id1, Field: "AVG", Value: 0.3125},
		{RunID: id1, Field: "HR", Value: 30},
		{RunID: id2, Field: "ERA", Value: 3},
	}, values)
}

func TestHistoryStoreNone(t *testing.T) {
	ctx := context.Background()
	hs, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)

	id, err := hs.RecordTotals(ctx, schema.TotalsRunRecord{TeamKey: "x"}, schema.AggregationResult{"HR": 1})
	assert.NoError(t, err)
	assert.Zero(t, id)

	runs, err := hs.GetAllRuns(ctx)
	assert.NoError(t, err)
	assert.Nil(t, runs)

	values, err := hs.GetAllValues(ctx)
	assert.NoError(t, err)
	assert.Nil(t, values)

	status, err := hs.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestMigrateHistoryNoneBackend(t *testing.T) {
	err := MigrateHistory(schema.NoneBackend, "", -1)
	assert.ErrorContains(t, err, "not supported")
}

func TestMigrateHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	// Already at latest
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 1))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 2))

	// The migrated schema is usable by the store
	hs, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = hs.Close() }()
	_, err = hs.RecordTotals(context.Background(), schema.TotalsRunRecord{TeamKey: "t", RecordedAt: time.Now()}, schema.AggregationResult{"HR": 1})
	assert.NoError(t, err)
}

func TestMigrateHistoryOverExistingStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "existing.db")
	hs, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, hs.Close())

	assert.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
}
