package cmd

import (
	"github.com/huangsam/statgrid/core"
	"github.com/spf13/cobra"
)

// gridCmd renders the full roster grid with a totals footer.
var gridCmd = &cobra.Command{
	Use:   "grid [roster-file]",
	Short: "Render the roster as a stat grid with team totals.",
	Long: `Render every roster slot as one or three rows and finish with a totals row.

In three-line mode (default) each slot shows its Season, rolling and Accrued
stats. In accrued-only mode each slot is a single Accrued row. The totals row
sums counting stats and recomputes rate stats like AVG and ERA from their
components, so a hitter with 2 AB does not weigh as much as one with 400.

The roster comes from a JSON or YAML file, or from the store with --team.

Examples:
  # Hitters from a roster file, sorted by home runs
  statgrid grid roster.json --sort HR:desc

  # Pitchers of a stored team as JSON
  statgrid grid --team aces --pitchers --output json

  # One row per slot
  statgrid grid roster.yaml --mode accrued-only`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot render grid", core.ExecuteGrid),
}

// totalsCmd prints the aggregated totals only.
var totalsCmd = &cobra.Command{
	Use:   "totals [roster-file]",
	Short: "Print the aggregated team totals of a roster.",
	Long: `Aggregate the Accrued stats of every rostered player into one totals row.

Counting stats are summed. Rate stats are recomputed from summed components:
AVG = H/AB, OBP = (H+BB+HBP)/(AB+BB+HBP+SF), SLG = TB/AB, ERA = 9*ER/IP,
WHIP = (BB+H)/IP, K/9 and BB/9. Rate categories without a formula are summed
and reported as a warning.

With --record the totals are also written to the history backend, which
must be configured with --history-backend.

Examples:
  # Totals of a roster file
  statgrid totals roster.json

  # Record pitching totals of a stored team
  statgrid totals --team aces --pitchers --record --history-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot aggregate totals", core.ExecuteTotals),
}

// columnsCmd lists the grid columns and their tooltips.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the grid columns with their descriptions.",
	Long: `List every column the grid can show: its key, header title, minimum width
and the description shown when hovering the header in the interactive grid.

League categories come from the league section of the config file.

Examples:
  # Hitting columns
  statgrid columns

  # Pitching columns as CSV
  statgrid columns --pitchers --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot list columns", core.ExecuteColumns),
}
