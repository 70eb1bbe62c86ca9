package cmd

import (
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd runs the interactive grid.
var tuiCmd = &cobra.Command{
	Use:   "tui [roster-file]",
	Short: "Browse the roster in an interactive grid.",
	Long: `Open the roster grid in the terminal with mouse and keyboard support.

Mouse:
- Click a header to cycle its sort: ascending, descending, unsorted
- Drag the border right of a header to resize the column (minimum 25)
- Hover a header to show its description after a short delay

Keyboard:
- Arrows or hjkl move the cursor, s or enter sorts the selected column
- + and - widen or narrow the selected column
- d drops the player of the selected row, m moves it to another position
- q quits

Rosters loaded with --team are saved back to the store after each drop or
move. Rosters read from a file are only changed for the session.

Examples:
  statgrid tui roster.json
  statgrid tui --team sluggers`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := tui.Run(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Interactive grid failed", err)
		}
	},
}
