//go:build basic

package integration

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolatedEnv keeps the SQLite files of a test inside its temp dir.
func isolatedEnv(t *testing.T) []string {
	dir := t.TempDir()
	return []string{
		"HOME=" + dir,
		"STATGRID_STORE_DB_CONNECT=" + filepath.Join(dir, "rosters.db"),
		"STATGRID_COLOR=no",
	}
}

// TestTotalsRecomputeRates checks that the CLI recomputes AVG from summed H and AB.
func TestTotalsRecomputeRates(t *testing.T) {
	out, err := runStatgrid(t, isolatedEnv(t), "totals", "roster.json", "--output", "json")
	require.NoError(t, err)

	var doc struct {
		Totals    map[string]float64 `json:"totals"`
		Formatted map[string]string  `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, 22.0, doc.Totals["G"])
	assert.Equal(t, 800.0, doc.Totals["AB"])
	assert.Equal(t, 30.0, doc.Totals["HR"])
	assert.Equal(t, 50.0, doc.Totals["R"])
	assert.InDelta(t, 0.3125, doc.Totals["AVG"], 1e-9)
	assert.Equal(t, ".313", doc.Formatted["AVG"])
}

// TestGridThreeLineJSON checks row expansion and sorting through the CLI.
func TestGridThreeLineJSON(t *testing.T) {
	out, err := runStatgrid(t, isolatedEnv(t), "grid", "roster.json", "--output", "json", "--sort", "HR:desc")
	require.NoError(t, err)

	var doc struct {
		Rows []struct {
			ID    string            `json:"id"`
			Cells map[string]string `json:"cells"`
		} `json:"rows"`
		Totals map[string]string `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Rows, 9)
	assert.Equal(t, "30", doc.Totals["HR"])

	// Blocks stay together and are ordered by accrued HR. The position
	// shows on the middle row of each block.
	assert.Equal(t, "1B", doc.Rows[1].Cells["position"])
	assert.Equal(t, "C", doc.Rows[4].Cells["position"])
	assert.Equal(t, "OF", doc.Rows[7].Cells["position"])
}

// TestImportThenGridByTeam checks the SQLite roster store round trip.
func TestImportThenGridByTeam(t *testing.T) {
	env := isolatedEnv(t)
	_, err := runStatgrid(t, env, "import", "roster.json", "--team", "sluggers")
	require.NoError(t, err)

	out, err := runStatgrid(t, env, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "sluggers")

	out, err = runStatgrid(t, env, "totals", "--team", "sluggers", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "AVG,AVG,0.3125,.313")
}

// TestColumnsList checks the column listing.
func TestColumnsList(t *testing.T) {
	out, err := runStatgrid(t, isolatedEnv(t), "columns", "--pitchers")
	require.NoError(t, err)
	assert.Contains(t, out, "ERA")
	assert.Contains(t, out, "WHIP")
}
