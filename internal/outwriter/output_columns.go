package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/statgrid/core/tooltip"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintColumns lists the grid columns with their descriptions.
func PrintColumns(entries []tooltip.Entry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut, schema.ParquetOut:
		// Column listings are tiny; parquet falls back to CSV.
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"key", "title", "description"}, func(cw *csv.Writer) error {
				for _, e := range entries {
					if err := cw.Write([]string{e.Key, e.Title, e.Description}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Key", "Title", "Description"})
			for _, e := range entries {
				if err := table.Append([]string{e.Key, e.Title, e.Description}); err != nil {
					return err
				}
			}
			return table.Render()
		}, "Wrote table")
	}
	return nil
}
