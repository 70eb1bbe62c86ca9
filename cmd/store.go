package cmd

import (
	"fmt"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/store"
	"github.com/spf13/cobra"
)

// storeSetup loads minimal configuration needed for roster store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := backendFromViper("store-backend", "store-db-connect")
	if err != nil {
		return err
	}

	// Initialize only the roster store; the history stays untouched
	if err := store.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize roster store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on roster store management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage saved rosters",
	Long: `Manage the rosters saved with the import command.

Saved rosters are loaded with --team by grid, totals and tui. Drops and moves
made in the interactive grid are written back to the store.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show store statistics and saved teams
  clear  - Remove all saved rosters

Examples:
  statgrid store status
  statgrid store clear`,
}

// storeClearCmd clears the roster store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved rosters",
	Long: `Delete every saved roster from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the roster table

Examples:
  # Clear the SQLite store (default)
  statgrid store clear

  # Clear a MySQL store (set connection string via env variable)
  STATGRID_STORE_BACKEND=mysql STATGRID_STORE_DB_CONNECT="..." statgrid store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Release the SQLite file before removing it
		store.CloseStores()
		if err := store.ClearStore(cfg.StoreBackend, orDefaultPath(cfg.StoreDBConnect, contract.GetStoreDBFilePath()), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear roster store", err)
		}
		fmt.Println("Roster store cleared successfully.")
	},
}

// storeStatusCmd shows roster store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and saved teams",
	Long: `Show the backend, connection state, number of saved rosters, their
timestamps, table size and the saved team keys.

Examples:
  statgrid store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		rs := storeManager.GetRosterStore()
		status, err := rs.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		teams, err := rs.Teams(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to list teams", err)
		}
		store.PrintStoreStatus(status, teams)
	},
}

// orDefaultPath returns the SQLite path in connStr, or fallback when it is empty.
func orDefaultPath(connStr, fallback string) string {
	if connStr == "" {
		return fallback
	}
	return connStr
}
