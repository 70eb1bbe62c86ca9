package store

import (
	"testing"
	"time"

	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "statgrid_rosters", false},
		{"leading underscore", "_rosters", false},
		{"digits", "rosters2", false},
		{"leading digit", "2rosters", true},
		{"space", "my rosters", true},
		{"injection", "rosters; DROP TABLE x", true},
		{"quote", `rosters"`, true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`t`", quoteTableName("t", schema.MySQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.PostgreSQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.SQLiteBackend))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(schema.PostgreSQLBackend, 3))
	assert.Equal(t, "?, ?", placeholders(schema.MySQLBackend, 2))
	assert.Equal(t, "?", placeholders(schema.SQLiteBackend, 1))
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "sqlite", driverName(schema.SQLiteBackend))
	assert.Equal(t, "mysql", driverName(schema.MySQLBackend))
	assert.Equal(t, "pgx", driverName(schema.PostgreSQLBackend))
}

func TestOpenDBUnsupported(t *testing.T) {
	_, err := openDB("oracle", "", "")
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestTimeScanner(t *testing.T) {
	when := time.Date(2025, 7, 4, 19, 5, 0, 123, time.UTC)

	ts := timeScanner{backend: schema.SQLiteBackend}
	ts.text = formatTime(when, schema.SQLiteBackend).(string)
	got, err := ts.time()
	require.NoError(t, err)
	assert.True(t, when.Equal(got))

	bad := timeScanner{backend: schema.SQLiteBackend, text: "yesterday"}
	_, err = bad.time()
	assert.Error(t, err)

	native := timeScanner{backend: schema.PostgreSQLBackend, value: when}
	got, err = native.time()
	require.NoError(t, err)
	assert.Equal(t, when, got)
	assert.Equal(t, when, formatTime(when, schema.PostgreSQLBackend))
}
