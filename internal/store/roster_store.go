package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
)

// ErrNotFound is returned when a team has no stored roster.
var ErrNotFound = errors.New("roster not found")

// RosterStoreImpl stores roster snapshots in one table keyed by team.
type RosterStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
	connStr   string
}

var _ contract.RosterStore = &RosterStoreImpl{} // Compile-time check

// NewRosterStore initializes and returns a new RosterStore based on the backend type.
func NewRosterStore(tableName string, backend schema.DatabaseBackend, connStr string) (*RosterStoreImpl, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	if backend == schema.NoneBackend {
		// No-op store for disabled persistence
		return &RosterStoreImpl{tableName: tableName, backend: backend, connStr: connStr}, nil
	}

	db, err := openDB(backend, connStr, contract.GetStoreDBFilePath())
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateRosterTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &RosterStoreImpl{
		db:        db,
		tableName: tableName,
		backend:   backend,
		connStr:   connStr,
	}, nil
}

// getCreateRosterTableQuery returns the CREATE TABLE query for the given backend.
func getCreateRosterTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				team_key VARCHAR(255) PRIMARY KEY,
				roster_value LONGBLOB NOT NULL,
				roster_version INT NOT NULL,
				roster_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				team_key TEXT PRIMARY KEY,
				roster_value BYTEA NOT NULL,
				roster_version INTEGER NOT NULL,
				roster_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				team_key TEXT PRIMARY KEY,
				roster_value BLOB NOT NULL,
				roster_version INTEGER NOT NULL,
				roster_timestamp INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// disabled reports whether the store is a no-op.
func (rs *RosterStoreImpl) disabled() bool {
	return rs.backend == schema.NoneBackend || rs.db == nil
}

// Get retrieves the roster stored under team.
func (rs *RosterStoreImpl) Get(ctx context.Context, team string) ([]byte, int, int64, error) {
	if rs.disabled() {
		return nil, 0, 0, ErrNotFound
	}

	var value []byte
	var version int
	var ts int64

	query := fmt.Sprintf(`SELECT roster_value, roster_version, roster_timestamp FROM %s WHERE team_key = %s`,
		quoteTableName(rs.tableName, rs.backend), placeholders(rs.backend, 1))
	err := rs.db.QueryRowContext(ctx, query, team).Scan(&value, &version, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrNotFound, team)
	}
	if err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces the roster stored under team.
func (rs *RosterStoreImpl) Set(ctx context.Context, team string, value []byte, version int, timestamp int64) error {
	if rs.disabled() {
		return nil
	}
	_, err := rs.db.ExecContext(ctx, rs.getUpsertQuery(), team, value, version, timestamp)
	return err
}

// getUpsertQuery returns the UPSERT query for the backend.
func (rs *RosterStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(rs.tableName, rs.backend)
	switch rs.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (team_key, roster_value, roster_version, roster_timestamp) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE roster_value = new.roster_value, roster_version = new.roster_version, roster_timestamp = new.roster_timestamp`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (team_key, roster_value, roster_version, roster_timestamp) VALUES ($1, $2, $3, $4)
			ON CONFLICT (team_key) DO UPDATE SET roster_value = EXCLUDED.roster_value, roster_version = EXCLUDED.roster_version, roster_timestamp = EXCLUDED.roster_timestamp`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (team_key, roster_value, roster_version, roster_timestamp) VALUES (?, ?, ?, ?)`, quotedTableName)
	}
}

// Teams lists the stored team keys in sorted order.
func (rs *RosterStoreImpl) Teams(ctx context.Context) ([]string, error) {
	if rs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT team_key FROM %s ORDER BY team_key`, quoteTableName(rs.tableName, rs.backend))
	rows, err := rs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var teams []string
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}
	return teams, nil
}

// Close closes the underlying DB connection.
func (rs *RosterStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the roster store.
func (rs *RosterStoreImpl) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}
	if rs.disabled() {
		return status, nil
	}

	quotedTableName := quoteTableName(rs.tableName, rs.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := rs.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalRosters); err != nil {
		return status, fmt.Errorf("failed to get total rosters: %w", err)
	}
	if status.TotalRosters == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	rangeQuery := fmt.Sprintf("SELECT MAX(roster_timestamp), MIN(roster_timestamp) FROM %s", quotedTableName)
	if err := rs.db.QueryRowContext(ctx, rangeQuery).Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	status.TableSizeBytes = rs.tableSize(ctx, status.TotalRosters)
	return status, nil
}

// tableSize estimates the on-disk size of the roster table.
func (rs *RosterStoreImpl) tableSize(ctx context.Context, rowCount int) int64 {
	// Rough estimate when the backend cannot tell
	estimate := int64(rowCount) * 4000

	var size int64
	switch rs.backend {
	case schema.SQLiteBackend:
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		if err := rs.db.QueryRowContext(ctx, sizeQuery).Scan(&size); err != nil {
			return 0
		}
		return size

	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(rs.connStr)
		if err != nil || cfg.DBName == "" {
			return estimate
		}
		sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		if err := rs.db.QueryRowContext(ctx, sizeQuery, cfg.DBName, rs.tableName).Scan(&size); err != nil {
			return estimate
		}
		return size

	case schema.PostgreSQLBackend:
		if err := rs.db.QueryRowContext(ctx, "SELECT pg_total_relation_size($1)", rs.tableName).Scan(&size); err != nil {
			return estimate
		}
		return size
	}
	return estimate
}
