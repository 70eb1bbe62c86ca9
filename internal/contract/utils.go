package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/statgrid/schema"
)

// Color variables for console output.
var (
	HeaderColor = color.New(color.FgCyan, color.Bold) // HeaderColor marks the active sort column.
	TotalsColor = color.New(color.FgGreen, color.Bold) // TotalsColor labels the totals row.
	WarnColor   = color.New(color.FgYellow)            // WarnColor prefixes warnings.
)

// Sort indicators appended to the active header.
const (
	AscendingIndicator  = "▲"
	DescendingIndicator = "▼"
)

// SortIndicator returns the arrow for a sort direction.
func SortIndicator(dir schema.SortDirection) string {
	if dir == schema.Descending {
		return DescendingIndicator
	}
	return AscendingIndicator
}

// DecorateHeader appends the sort indicator to the header of the active sort column.
// With colors enabled the whole header is highlighted.
func DecorateHeader(title, key string, state *schema.SortState, useColors bool) string {
	if state == nil || state.Key != key {
		return title
	}
	text := title + " " + SortIndicator(state.Direction)
	if useColors {
		return HeaderColor.Sprint(text)
	}
	return text
}

// TotalsLabel returns the label for the totals row.
func TotalsLabel(useColors bool) string {
	if useColors {
		return TotalsColor.Sprint("TOTAL")
	}
	return "TOTAL"
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", WarnColor.Sprint("Warn"), msg, err)
}

// LogInfo logs a status message to stderr so it never mixes with piped output.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the roster store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".statgrid_rosters.db"
	}
	return filepath.Join(homeDir, ".statgrid_rosters.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for the totals history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".statgrid_history.db"
	}
	return filepath.Join(homeDir, ".statgrid_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
