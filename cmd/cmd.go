// Package cmd defines the command-line interface for statgrid.
package cmd

import (
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("team", "t", "", "Team key of a stored roster (used when no roster file is given)")
	rootCmd.PersistentFlags().BoolP("pitchers", "p", false, "Use the pitching categories instead of the hitting ones")
	rootCmd.PersistentFlags().String("mode", string(schema.ThreeLineMode), "Rows per slot: three-line or accrued-only")
	rootCmd.PersistentFlags().StringP("sort", "s", "", "Initial sort as key or key:asc or key:desc (e.g. HR:desc)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("abbreviate", false, "Abbreviate player names as first initial and last name")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Roster store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Totals history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for the totals history (must differ from store-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of totalsCmd to Viper
	totalsCmd.Flags().Bool("record", false, "Record the totals in the history backend")
	if err := viper.BindPFlags(totalsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding totals flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
