package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortIndicator(t *testing.T) {
	assert.Equal(t, AscendingIndicator, SortIndicator(schema.Ascending))
	assert.Equal(t, DescendingIndicator, SortIndicator(schema.Descending))
}

func TestDecorateHeader(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		state    *schema.SortState
		expected string
	}{
		{
			name:     "unsorted",
			key:      "AVG",
			state:    nil,
			expected: "AVG",
		},
		{
			name:     "other column sorted",
			key:      "AVG",
			state:    &schema.SortState{Key: "HR", Direction: schema.Ascending},
			expected: "AVG",
		},
		{
			name:     "ascending",
			key:      "AVG",
			state:    &schema.SortState{Key: "AVG", Direction: schema.Ascending},
			expected: "AVG ▲",
		},
		{
			name:     "descending",
			key:      "AVG",
			state:    &schema.SortState{Key: "AVG", Direction: schema.Descending},
			expected: "AVG ▼",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecorateHeader("AVG", tt.key, tt.state, false))
		})
	}
}

func TestDecorateHeaderColored(t *testing.T) {
	state := &schema.SortState{Key: "HR", Direction: schema.Descending}
	// Should contain the plain text whether or not the terminal supports color
	assert.Contains(t, DecorateHeader("HR", "HR", state, true), "HR ▼")
	assert.Contains(t, TotalsLabel(true), "TOTAL")
	assert.Equal(t, "TOTAL", TotalsLabel(false))
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestDBFilePaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	store := GetStoreDBFilePath()
	history := GetHistoryDBFilePath()

	assert.Contains(t, store, ".statgrid_rosters.db")
	assert.Contains(t, history, ".statgrid_history.db")
	assert.NotEqual(t, store, history)
	assert.True(t, strings.HasPrefix(store, homeDir), "path %s should start with home dir %s", store, homeDir)
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func FuzzParseSortString(f *testing.F) {
	for _, seed := range []string{"", "AVG", "AVG:desc", "name:ASC", ":desc", "HR:sideways", "a:b:c"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		state, err := ParseSortString(s)
		if err != nil {
			assert.Nil(t, state)
			return
		}
		if state == nil {
			assert.Empty(t, strings.TrimSpace(s))
			return
		}
		assert.NotEmpty(t, state.Key)
		assert.Contains(t, []schema.SortDirection{schema.Ascending, schema.Descending}, state.Direction)
	})
}
