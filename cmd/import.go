package cmd

import (
	"github.com/huangsam/statgrid/core"
	"github.com/spf13/cobra"
)

// importCmd stores a roster file under a team key.
var importCmd = &cobra.Command{
	Use:   "import <roster-file>",
	Short: "Save a roster file to the store under a team key.",
	Long: `Read a JSON or YAML roster and save it to the roster store.

Players without an ID are given a generated one so that their rows stay
stable across runs. An existing roster under the same team is replaced.

Examples:
  # Save to the default SQLite store
  statgrid import roster.json --team sluggers

  # Save to PostgreSQL
  STATGRID_STORE_DB_CONNECT="host=localhost dbname=statgrid" statgrid import roster.yaml --team aces --store-backend postgresql`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot import roster", core.ExecuteImport),
}
