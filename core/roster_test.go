package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/statgrid/core/agg"
	"github.com/huangsam/statgrid/core/expand"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/store"
	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterYAML = `
team: bombers
slots:
  - position: C
    entity:
      id: smith
      name: Will Smith
      stats:
        accrued:
          AB: 100
          H: 30
          HR: null
  - position: OF
`

func TestDecodeRoster(t *testing.T) {
	t.Run("json list", func(t *testing.T) {
		slots, err := DecodeRoster([]byte(`[{"position":"C","entity":{"name":"A"}},{"position":"BN","entity":null}]`), false)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "A", slots[0].Entity.Name)
		assert.Nil(t, slots[1].Entity)
	})

	t.Run("json document", func(t *testing.T) {
		slots, err := DecodeRoster([]byte(`{"team":"x","slots":[{"position":"SS"}]}`), false)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "SS", slots[0].Position)
	})

	t.Run("free agents", func(t *testing.T) {
		slots, err := DecodeRoster([]byte(`{"free_agents":[{"name":"FA One","position":"2B"},{"name":"FA Two"}]}`), false)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "2B", slots[0].Position)
		assert.Equal(t, "FA Two", slots[1].Entity.Name)
	})

	t.Run("bare entity array", func(t *testing.T) {
		slots, err := DecodeRoster([]byte(`[{"id":"fa1","name":"FA One","position":"2B","stats":{"accrued":{"AB":100,"H":30}}}]`), false)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "2B", slots[0].Position)
		require.NotNil(t, slots[0].Entity)
		assert.Equal(t, "fa1", slots[0].Entity.ID)

		totals := agg.Aggregate(expand.Expand(slots, schema.AccruedOnlyMode), schema.DefaultStatConfigs(false), false)
		assert.Equal(t, 100.0, totals["AB"])
		assert.Equal(t, 30.0, totals["H"])
		assert.InDelta(t, 0.3, totals["AVG"], 1e-9)
	})

	t.Run("bare entity array yaml", func(t *testing.T) {
		slots, err := DecodeRoster([]byte("- id: fa2\n  name: FA Two\n  position: SS\n"), true)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "SS", slots[0].Position)
		require.NotNil(t, slots[0].Entity)
		assert.Equal(t, "FA Two", slots[0].Entity.Name)
	})

	t.Run("empty slots stay slots", func(t *testing.T) {
		slots, err := DecodeRoster([]byte(`[{"position":"C"},{"position":"OF","entity":null}]`), false)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "C", slots[0].Position)
		assert.Nil(t, slots[0].Entity)
		assert.Nil(t, slots[1].Entity)
	})

	t.Run("yaml document", func(t *testing.T) {
		slots, err := DecodeRoster([]byte(rosterYAML), true)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		snap := slots[0].Entity.Snapshot(schema.AccruedPeriod)
		assert.Equal(t, 30.0, snap.Get("H").OrZero())
		assert.False(t, snap.Get("HR").Valid(), "null stays absent")
		assert.Nil(t, slots[1].Entity)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeRoster([]byte(`{"slots":`), false)
		assert.Error(t, err)
	})
}

func TestLoadRosterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0o644))

	slots, err := LoadRosterFile(path)
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	_, err = LoadRosterFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read roster file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = LoadRosterFile(bad)
	assert.ErrorContains(t, err, "bad.json")
}

func TestLoadRoster(t *testing.T) {
	ctx := context.Background()

	_, err := LoadRoster(ctx, &contract.Config{}, nil)
	assert.ErrorIs(t, err, ErrNoRoster)

	_, err = LoadRoster(ctx, &contract.Config{TeamKey: "bombers"}, nil)
	assert.ErrorContains(t, err, "not available")

	rs := &store.MockRosterStore{}
	rs.On("Get", ctx, "bombers").Return([]byte(`[{"position":"C"}]`), store.RosterVersion, int64(1), nil)
	mgr := &store.MockStoreManager{}
	mgr.On("GetRosterStore").Return(rs)

	slots, err := LoadRoster(ctx, &contract.Config{TeamKey: "bombers"}, mgr)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "C", slots[0].Position)
	rs.AssertExpectations(t)
}
