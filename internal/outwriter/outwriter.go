// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/statgrid/internal/contract"
	"golang.org/x/term"
)

// Name width bounds for the text table, in terminal cells.
const (
	MinNameWidth = 10
	MaxNameWidth = 28
)

// GetMaxNameWidth calculates the maximum width for player names in table output
// based on terminal width and the number of other columns.
func GetMaxNameWidth(cfg *contract.Config, otherColumns int) int {
	termWidth := cfg.Width
	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 120
		} else {
			termWidth = detectedWidth
		}
	}

	// Each other column takes about 8 cells with padding and separator
	available := termWidth - otherColumns*8 - 4
	return max(MinNameWidth, min(available, MaxNameWidth))
}
