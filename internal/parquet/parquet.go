// Package parquet exports statgrid tables and the totals history to Parquet
// files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/schema"
	"github.com/parquet-go/parquet-go"
)

// FooterRowID marks the cells of the totals row in a grid export.
const FooterRowID = "totals"

// GridCell is one rendered cell of a grid in long format, so any column set
// fits a single fixed schema.
type GridCell struct {
	// RowIndex is the display position of the row, -1 for the totals row
	RowIndex int32 `parquet:"row_index,snappy"`

	// RowID is the stable identifier of the display row
	RowID string `parquet:"row_id,snappy"`

	// ColumnKey is the key of the column the cell belongs to
	ColumnKey string `parquet:"column_key,snappy,dict"`

	// Header is the column title
	Header string `parquet:"header,snappy,dict"`

	// Value is the formatted cell text
	Value string `parquet:"value,snappy"`
}

// TotalsRun represents one recorded totals computation.
// This struct maps to the statgrid_totals_runs database table.
type TotalsRun struct {
	RunID       int64     `parquet:"run_id,snappy"`
	TeamKey     string    `parquet:"team_key,snappy,dict"`
	IsPitcher   bool      `parquet:"is_pitcher"`
	RecordedAt  time.Time `parquet:"recorded_at,snappy"`
	EntityCount int32     `parquet:"entity_count,snappy"`
}

// TotalsValue represents one category total of a run.
// This struct maps to the statgrid_totals_values database table.
type TotalsValue struct {
	RunID int64   `parquet:"run_id,snappy"`
	Field string  `parquet:"field,snappy,dict"`
	Value float64 `parquet:"value,snappy"`
}

// ConvertTable flattens a rendered table, footer included, into cells.
func ConvertTable(t grid.Table) []GridCell {
	cells := make([]GridCell, 0, (len(t.Rows)+1)*len(t.Keys))
	for ri, row := range t.Rows {
		id := ""
		if ri < len(t.RowIDs) {
			id = t.RowIDs[ri]
		}
		for ci, v := range row {
			cells = append(cells, GridCell{
				RowIndex:  int32(ri),
				RowID:     id,
				ColumnKey: t.Keys[ci],
				Header:    t.Headers[ci],
				Value:     v,
			})
		}
	}
	for ci, v := range t.Footer {
		cells = append(cells, GridCell{
			RowIndex:  -1,
			RowID:     FooterRowID,
			ColumnKey: t.Keys[ci],
			Header:    t.Headers[ci],
			Value:     v,
		})
	}
	return cells
}

// ConvertTotalsRunRecords converts store records to Parquet rows.
func ConvertTotalsRunRecords(records []schema.TotalsRunRecord) []TotalsRun {
	out := make([]TotalsRun, len(records))
	for i, r := range records {
		out[i] = TotalsRun{
			RunID:       r.RunID,
			TeamKey:     r.TeamKey,
			IsPitcher:   r.IsPitcher,
			RecordedAt:  r.RecordedAt,
			EntityCount: r.EntityCount,
		}
	}
	return out
}

// ConvertTotalsValueRecords converts store records to Parquet rows.
func ConvertTotalsValueRecords(records []schema.TotalsValueRecord) []TotalsValue {
	out := make([]TotalsValue, len(records))
	for i, r := range records {
		out[i] = TotalsValue{RunID: r.RunID, Field: r.Field, Value: r.Value}
	}
	return out
}

// Write encodes rows into w. The schema is derived from the struct tags of T.
func Write[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteFile creates outputPath and writes rows into it.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Read decodes every row of a Parquet file.
func Read[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return rows, nil
}
