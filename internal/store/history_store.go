package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
)

// Table names for the totals history.
const (
	totalsRunsTable   = "statgrid_totals_runs"
	totalsValuesTable = "statgrid_totals_values"
)

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (*HistoryStoreImpl, error) {
	if backend == schema.NoneBackend {
		// No-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr, contract.GetHistoryDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// createHistoryTables creates the totals history tables.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{totalsRunsTable, getCreateRunsQuery(backend)},
		{totalsValuesTable, getCreateValuesQuery(backend)},
	}
	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for statgrid_totals_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(totalsRunsTable, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				team_key VARCHAR(255) NOT NULL,
				is_pitcher BOOLEAN NOT NULL,
				recorded_at DATETIME(6) NOT NULL,
				entity_count INT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				team_key TEXT NOT NULL,
				is_pitcher BOOLEAN NOT NULL,
				recorded_at TIMESTAMPTZ NOT NULL,
				entity_count INTEGER NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				team_key TEXT NOT NULL,
				is_pitcher INTEGER NOT NULL,
				recorded_at TEXT NOT NULL,
				entity_count INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// getCreateValuesQuery returns the CREATE TABLE query for statgrid_totals_values.
func getCreateValuesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(totalsValuesTable, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				field_key VARCHAR(64) NOT NULL,
				total_value DOUBLE NOT NULL,
				PRIMARY KEY (run_id, field_key)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				field_key TEXT NOT NULL,
				total_value DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, field_key)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				field_key TEXT NOT NULL,
				total_value REAL NOT NULL,
				PRIMARY KEY (run_id, field_key)
			);
		`, quotedTableName)
	}
}

// disabled reports whether the store is a no-op.
func (hs *HistoryStoreImpl) disabled() bool {
	return hs.backend == schema.NoneBackend || hs.db == nil
}

// RecordTotals stores a run and its values in one transaction and returns the run ID.
func (hs *HistoryStoreImpl) RecordTotals(ctx context.Context, run schema.TotalsRunRecord, totals schema.AggregationResult) (int64, error) {
	if hs.disabled() {
		return 0, nil
	}

	tx, err := hs.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runsTable := quoteTableName(totalsRunsTable, hs.backend)
	columns := "team_key, is_pitcher, recorded_at, entity_count"
	args := []any{run.TeamKey, run.IsPitcher, formatTime(run.RecordedAt, hs.backend), run.EntityCount}

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING run_id`, runsTable, columns, placeholders(hs.backend, 4))
		err = tx.QueryRowContext(ctx, query, args...).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, runsTable, columns, placeholders(hs.backend, 4))
		var result sql.Result
		result, err = tx.ExecContext(ctx, query, args...)
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert totals run: %w", err)
	}

	valuesQuery := fmt.Sprintf(`INSERT INTO %s (run_id, field_key, total_value) VALUES (%s)`,
		quoteTableName(totalsValuesTable, hs.backend), placeholders(hs.backend, 3))
	fields := make([]string, 0, len(totals))
	for f := range totals {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		if _, err := tx.ExecContext(ctx, valuesQuery, runID, f, totals[f]); err != nil {
			return 0, fmt.Errorf("failed to insert total %s: %w", f, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit totals run: %w", err)
	}
	return runID, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus(ctx context.Context) (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(hs.backend),
		Connected: hs.db != nil,
	}
	if hs.disabled() {
		return status, nil
	}

	runsTable := quoteTableName(totalsRunsTable, hs.backend)
	if err := hs.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", runsTable)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}
	if status.TotalRuns == 0 {
		return status, nil
	}

	last := timeScanner{backend: hs.backend}
	lastQuery := fmt.Sprintf("SELECT run_id, recorded_at FROM %s ORDER BY run_id DESC LIMIT 1", runsTable)
	if err := hs.db.QueryRowContext(ctx, lastQuery).Scan(&status.LastRunID, last.dest()); err != nil {
		return status, fmt.Errorf("failed to get last run info: %w", err)
	}
	lastTime, err := last.time()
	if err != nil {
		return status, err
	}
	status.LastRunTime = lastTime

	oldest := timeScanner{backend: hs.backend}
	oldestQuery := fmt.Sprintf("SELECT recorded_at FROM %s ORDER BY run_id ASC LIMIT 1", runsTable)
	if err := hs.db.QueryRowContext(ctx, oldestQuery).Scan(oldest.dest()); err != nil {
		return status, fmt.Errorf("failed to get oldest run time: %w", err)
	}
	oldestTime, err := oldest.time()
	if err != nil {
		return status, err
	}
	status.OldestRunTime = oldestTime

	return status, nil
}

// GetAllRuns retrieves every recorded run, oldest first.
func (hs *HistoryStoreImpl) GetAllRuns(ctx context.Context) ([]schema.TotalsRunRecord, error) {
	if hs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT run_id, team_key, is_pitcher, recorded_at, entity_count FROM %s ORDER BY run_id",
		quoteTableName(totalsRunsTable, hs.backend))
	rows, err := hs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.TotalsRunRecord
	for rows.Next() {
		var record schema.TotalsRunRecord
		recorded := timeScanner{backend: hs.backend}
		if err := rows.Scan(&record.RunID, &record.TeamKey, &record.IsPitcher, recorded.dest(), &record.EntityCount); err != nil {
			return nil, fmt.Errorf("failed to scan totals run: %w", err)
		}
		if record.RecordedAt, err = recorded.time(); err != nil {
			return nil, err
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals runs: %w", err)
	}
	return results, nil
}

// GetAllValues retrieves every totals value ordered by run and field.
func (hs *HistoryStoreImpl) GetAllValues(ctx context.Context) ([]schema.TotalsValueRecord, error) {
	if hs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT run_id, field_key, total_value FROM %s ORDER BY run_id, field_key",
		quoteTableName(totalsValuesTable, hs.backend))
	rows, err := hs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals values: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.TotalsValueRecord
	for rows.Next() {
		var record schema.TotalsValueRecord
		if err := rows.Scan(&record.RunID, &record.Field, &record.Value); err != nil {
			return nil, fmt.Errorf("failed to scan totals value: %w", err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals values: %w", err)
	}
	return results, nil
}
