package cmd

import (
	"errors"
	"fmt"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/store"
	"github.com/huangsam/statgrid/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := backendFromViper("history-backend", "history-db-connect")
	if err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no roster store for history commands)
	if err := store.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// It does NOT initialize stores or create tables, so migrations can run on a
// fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := backendFromViper("history-backend", "history-db-connect")
	if err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on totals history management.
//
// History subcommands use minimal initialization instead of sharedSetup,
// so they need neither a roster nor league categories.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded team totals",
	Long: `Manage the team totals recorded with 'statgrid totals --record'.

Every recorded run stores its team, side, timestamp and player count plus
one value per aggregated field. This makes it possible to follow how team
totals move over a season.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics
  export  - Export runs and values to Parquet
  clear   - Remove all recorded totals
  migrate - Run database schema migrations

Examples:
  statgrid history status --history-backend sqlite
  statgrid history export --history-backend sqlite --output-file totals`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show the backend, connection state, number of recorded runs and the
timestamps of the newest and oldest runs.

Examples:
  statgrid history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		hs := storeManager.GetHistoryStore()
		if hs == nil {
			contract.LogFatal("Failed to get history status", errors.New("no history backend configured"))
		}
		status, err := hs.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		store.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports the totals history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded totals to Parquet files",
	Long: `Write the recorded runs and their values to two Parquet files named after
--output-file: <file>.totals_runs.parquet and <file>.totals_values.parquet.

The files load directly into pandas, DuckDB or Spark.

Examples:
  statgrid history export --history-backend sqlite --output-file totals`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := store.ExportHistory(rootCtx, storeManager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyClearCmd clears the totals history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded totals",
	Long: `Delete every recorded totals run and value.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  statgrid history export --history-backend sqlite --output-file backup
  statgrid history clear --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store.CloseStores()
		if err := store.ClearHistory(cfg.HistoryBackend, orDefaultPath(cfg.HistoryDBConnect, contract.GetHistoryDBFilePath()), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyMigrateCmd runs the history schema migrations.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations for the totals history",
	Long: `Apply or roll back the embedded schema migrations of the totals history.

--target-version -1 (default) migrates to the latest version, 0 rolls back
every migration and any other value migrates to that version.

MySQL connection strings need multiStatements=true.

Examples:
  # Migrate to the latest schema
  statgrid history migrate --history-backend sqlite

  # Roll back everything on PostgreSQL
  statgrid history migrate --history-backend postgresql --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := store.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate history", err)
		}
		fmt.Println("History migrations applied successfully.")
	},
}
