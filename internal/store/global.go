package store

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
)

// rosterTable is the name of the table holding roster snapshots.
const rosterTable = "statgrid_rosters"

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global manager with separate roster and history stores.
// An empty backend leaves the corresponding store unset.
func InitStores(storeBackend schema.DatabaseBackend, storeConnStr string, historyBackend schema.DatabaseBackend, historyConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		var rosters contract.RosterStore
		if storeBackend != "" {
			rs, err := NewRosterStore(rosterTable, storeBackend, storeConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize roster store: %w", err)
				return
			}
			rosters = rs
		}

		var history contract.HistoryStore
		if historyBackend != "" {
			hs, err := NewHistoryStore(historyBackend, historyConnStr)
			if err != nil {
				if rosters != nil {
					_ = rosters.Close()
				}
				initErr = fmt.Errorf("failed to initialize history store: %w", err)
				return
			}
			history = hs
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.rosters = rosters
		Manager.history = history
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.rosters != nil {
			_ = Manager.rosters.Close()
		}
		if Manager.history != nil {
			_ = Manager.history.Close()
		}
	})
}

// ClearStore deletes every stored roster.
// For SQLite, it deletes the database file.
// For MySQL/PostgreSQL, it drops the table.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearTables(backend, dbFilePath, connStr, rosterTable)
}

// ClearHistory deletes the totals history.
func ClearHistory(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearTables(backend, dbFilePath, connStr, totalsValuesTable, totalsRunsTable, "schema_migrations")
}

// clearTables removes the SQLite file or drops the named tables.
func clearTables(backend schema.DatabaseBackend, dbFilePath, connStr string, tables ...string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		for _, table := range tables {
			if err := dropTable(backend, connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// dropTable connects to the SQL database and drops the table if it exists.
func dropTable(backend schema.DatabaseBackend, connStr, tableName string) error {
	name := driverName(backend)
	db, err := sql.Open(name, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", name, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", name, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}
