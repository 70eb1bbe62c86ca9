package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/statgrid/core/expand"
	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/parquet"
	"github.com/huangsam/statgrid/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGrid outputs a rendered grid, dispatching based on the output format configured.
func PrintGrid(t grid.Table, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGridJSON(w, t, cfg.Sort)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGridCSV(w, t)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertTable(t))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGridTable(w, t, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeGridTable generates and writes the human-readable table.
func writeGridTable(w io.Writer, t grid.Table, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := make([]string, len(t.Headers))
	nameCol := -1
	for i, h := range t.Headers {
		headers[i] = contract.DecorateHeader(h, t.Keys[i], cfg.Sort, cfg.UseColors)
		if t.Keys[i] == schema.KeyName {
			nameCol = i
		}
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
		cfg.Footer.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxNameWidth(cfg, len(t.Keys)-1)
	data := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		copy(cells, row)
		if nameCol >= 0 {
			cells[nameCol] = schema.FitName(cells[nameCol], nameWidth)
		}
		data[i] = cells
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if len(t.Footer) > 0 {
		table.Footer(t.Footer)
	}
	if err := table.Render(); err != nil {
		return err
	}

	slots := len(t.Rows) / len(expand.RowTypes(cfg.Mode))
	if _, err := fmt.Fprintf(w, "Showing %d slots (%d rows, %s)\n", slots, len(t.Rows), cfg.Mode); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rendered in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeGridCSV writes one record per display row keyed by column, then the totals row.
func writeGridCSV(w io.Writer, t grid.Table) error {
	header := append([]string{"row_id"}, t.Keys...)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, row := range t.Rows {
			id := ""
			if i < len(t.RowIDs) {
				id = t.RowIDs[i]
			}
			if err := cw.Write(append([]string{id}, row...)); err != nil {
				return err
			}
		}
		if len(t.Footer) > 0 {
			return cw.Write(append([]string{parquet.FooterRowID}, t.Footer...))
		}
		return nil
	})
}

// jsonColumn describes one column of a JSON grid.
type jsonColumn struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Width int    `json:"width"`
}

// jsonRow is one display row of a JSON grid.
type jsonRow struct {
	ID    string            `json:"id"`
	Cells map[string]string `json:"cells"`
}

// jsonGrid is the JSON document for a rendered grid.
type jsonGrid struct {
	Columns []jsonColumn      `json:"columns"`
	Sort    *schema.SortState `json:"sort,omitempty"`
	Rows    []jsonRow         `json:"rows"`
	Totals  map[string]string `json:"totals,omitempty"`
}

// writeGridJSON writes the grid with cells keyed by column key.
func writeGridJSON(w io.Writer, t grid.Table, sort *schema.SortState) error {
	out := jsonGrid{
		Columns: make([]jsonColumn, len(t.Keys)),
		Sort:    sort,
		Rows:    make([]jsonRow, len(t.Rows)),
	}
	for i, k := range t.Keys {
		out.Columns[i] = jsonColumn{Key: k, Title: t.Headers[i], Width: t.Widths[i]}
	}
	for i, row := range t.Rows {
		r := jsonRow{Cells: make(map[string]string, len(row))}
		if i < len(t.RowIDs) {
			r.ID = t.RowIDs[i]
		}
		for ci, v := range row {
			r.Cells[t.Keys[ci]] = v
		}
		out.Rows[i] = r
	}
	if len(t.Footer) > 0 {
		out.Totals = make(map[string]string, len(t.Footer))
		for ci, v := range t.Footer {
			if v != "" {
				out.Totals[t.Keys[ci]] = v
			}
		}
	}
	return writeJSON(w, out)
}
