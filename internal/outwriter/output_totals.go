package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/statgrid/core/statfmt"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/parquet"
	"github.com/huangsam/statgrid/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// totalsField is one category of a totals result, in display order.
type totalsField struct {
	Config schema.StatFieldConfig
	Value  float64
}

// orderTotals lists the static counting fields first, then the league
// categories. Fields missing from totals are skipped.
func orderTotals(totals schema.AggregationResult, configs []schema.StatFieldConfig, isPitcher bool) []totalsField {
	seen := make(map[string]struct{})
	var out []totalsField
	add := func(cfg schema.StatFieldConfig) {
		if _, dup := seen[cfg.Field]; dup {
			return
		}
		v, ok := totals[cfg.Field]
		if !ok {
			return
		}
		seen[cfg.Field] = struct{}{}
		out = append(out, totalsField{Config: cfg, Value: v})
	}
	for _, f := range schema.StaticCountingFields(isPitcher) {
		add(schema.StatFieldConfig{Field: f, Label: f})
	}
	for _, cfg := range configs {
		add(cfg)
	}
	return out
}

// PrintTotals outputs the team totals in the configured format.
func PrintTotals(totals schema.AggregationResult, configs []schema.StatFieldConfig, cfg *contract.Config) error {
	fields := orderTotals(totals, configs, cfg.IsPitcher)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTotalsJSON(w, fields, cfg)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTotalsCSV(w, fields)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		values := make([]schema.TotalsValueRecord, len(fields))
		for i, f := range fields {
			values[i] = schema.TotalsValueRecord{Field: f.Config.Field, Value: f.Value}
		}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertTotalsValueRecords(values))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTotalsTable(w, fields, cfg)
		}, "Wrote table")
	}
	return nil
}

// writeTotalsTable prints a single-row table with one column per category.
func writeTotalsTable(w io.Writer, fields []totalsField, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	headers := make([]string, 0, len(fields)+1)
	row := make([]string, 0, len(fields)+1)
	headers = append(headers, "")
	row = append(row, contract.TotalsLabel(cfg.UseColors))
	for _, f := range fields {
		headers = append(headers, f.Config.DisplayLabel())
		row = append(row, statfmt.FormatStat(schema.Some(f.Value), f.Config))
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Append(row); err != nil {
		return err
	}
	return table.Render()
}

// writeTotalsCSV writes field,label,value records with unrounded values.
func writeTotalsCSV(w io.Writer, fields []totalsField) error {
	return writeCSVWithHeader(w, []string{"field", "label", "value", "formatted"}, func(cw *csv.Writer) error {
		for _, f := range fields {
			rec := []string{
				f.Config.Field,
				f.Config.DisplayLabel(),
				strconv.FormatFloat(f.Value, 'f', -1, 64),
				statfmt.FormatStat(schema.Some(f.Value), f.Config),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// jsonTotals is the JSON document for a totals result.
type jsonTotals struct {
	Team      string             `json:"team,omitempty"`
	IsPitcher bool               `json:"is_pitcher"`
	Totals    map[string]float64 `json:"totals"`
	Formatted map[string]string  `json:"formatted"`
	Order     []string           `json:"order"`
}

// writeTotalsJSON writes raw totals next to their formatted text.
func writeTotalsJSON(w io.Writer, fields []totalsField, cfg *contract.Config) error {
	out := jsonTotals{
		Team:      cfg.TeamKey,
		IsPitcher: cfg.IsPitcher,
		Totals:    make(map[string]float64, len(fields)),
		Formatted: make(map[string]string, len(fields)),
		Order:     make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		out.Totals[f.Config.Field] = f.Value
		out.Formatted[f.Config.Field] = statfmt.FormatStat(schema.Some(f.Value), f.Config)
		out.Order = append(out.Order, f.Config.Field)
	}
	return writeJSON(w, out)
}
