// Package core wires the grid engines together: it loads rosters, builds the
// league's columns, renders the grid with its totals row and hands the result
// to the output writers.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/statgrid/core/agg"
	"github.com/huangsam/statgrid/core/expand"
	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/core/statfmt"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/outwriter"
	"github.com/huangsam/statgrid/internal/store"
	"github.com/huangsam/statgrid/schema"
)

// ExecutorFunc defines the function signature for executing the grid commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// GridOutput is a fully rendered roster grid.
type GridOutput struct {
	Columns   []grid.Column
	Rows      []schema.DisplayRow // expansion order
	Table     grid.Table
	Totals    schema.AggregationResult
	Configs   []schema.StatFieldConfig
	Fallbacks []string // rate categories summed for lack of a formula
}

// BuildGrid expands the slots, sorts them by cfg.Sort keeping slot blocks
// together, and renders the table with a totals footer.
func BuildGrid(slots []schema.RosterSlot, cfg *contract.Config) *GridOutput {
	configs := cfg.StatConfigs()
	columns := BuildColumns(configs, ColumnOptions{
		Mode:       cfg.Mode,
		IsPitcher:  cfg.IsPitcher,
		Abbreviate: cfg.Abbreviate,
		Money:      HasMoney(slots),
	})
	rows := expand.Expand(slots, cfg.Mode)

	g := grid.New(columns, grid.WithSortState(cfg.Sort), grid.WithGrouping(schema.AccruedRow))
	table := g.Render(rows)
	totals := agg.Aggregate(rows, configs, cfg.IsPitcher)
	table.Footer = TotalsCells(columns, totals, configs, cfg.UseColors && cfg.Output == schema.TextOut)

	return &GridOutput{
		Columns:   columns,
		Rows:      rows,
		Table:     table,
		Totals:    totals,
		Configs:   configs,
		Fallbacks: agg.FallbackFields(configs),
	}
}

// TotalsCells renders the totals row aligned to the columns. The position
// column carries the label and columns without a total stay blank.
func TotalsCells(columns []grid.Column, totals schema.AggregationResult, configs []schema.StatFieldConfig, useColors bool) []string {
	byField := make(map[string]schema.StatFieldConfig, len(configs))
	for _, c := range configs {
		byField[c.Field] = c
	}

	cells := make([]string, len(columns))
	for i, col := range columns {
		if col.Key == schema.KeyPosition {
			cells[i] = contract.TotalsLabel(useColors)
			continue
		}
		v, ok := totals[col.Key]
		if !ok {
			continue
		}
		cfg, ok := byField[col.Key]
		if !ok {
			cfg = schema.StatFieldConfig{Field: col.Key}
		}
		cells[i] = statfmt.FormatStat(schema.Some(v), cfg)
	}
	return cells
}

// ExecuteGrid renders the roster grid and prints it.
func ExecuteGrid(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	slots, err := LoadRoster(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	out := BuildGrid(slots, cfg)
	warnFallbacks(out.Fallbacks)
	return outwriter.PrintGrid(out.Table, cfg, time.Since(start))
}

// ExecuteTotals prints only the aggregated totals of the roster and, with
// --record, stores them in the totals history.
func ExecuteTotals(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	slots, err := LoadRoster(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	configs := cfg.StatConfigs()
	rows := expand.Expand(slots, schema.AccruedOnlyMode)
	totals := agg.Aggregate(rows, configs, cfg.IsPitcher)
	warnFallbacks(agg.FallbackFields(configs))

	if cfg.Record {
		if err := recordTotals(ctx, cfg, mgr, slots, totals); err != nil {
			return err
		}
	}
	return outwriter.PrintTotals(totals, configs, cfg)
}

// recordTotals writes one totals run into the history store.
func recordTotals(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, slots []schema.RosterSlot, totals schema.AggregationResult) error {
	if mgr == nil || mgr.GetHistoryStore() == nil {
		return errors.New("--record needs a history backend (set --history-backend)")
	}
	team := cfg.TeamKey
	if team == "" {
		team = cfg.RosterPath
	}
	run := schema.TotalsRunRecord{
		TeamKey:     team,
		IsPitcher:   cfg.IsPitcher,
		RecordedAt:  time.Now().UTC(),
		EntityCount: int32(countEntities(slots)),
	}
	id, err := mgr.GetHistoryStore().RecordTotals(ctx, run, totals)
	if err != nil {
		return fmt.Errorf("failed to record totals: %w", err)
	}
	contract.LogInfo("Recorded totals run %d for %s", id, team)
	return nil
}

// ExecuteImport stores a roster file under the configured team key.
func ExecuteImport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if cfg.RosterPath == "" {
		return errors.New("import needs a roster file")
	}
	if cfg.TeamKey == "" {
		return errors.New("import needs --team")
	}
	if mgr == nil || mgr.GetRosterStore() == nil {
		return errors.New("roster store is not available")
	}
	slots, err := LoadRosterFile(cfg.RosterPath)
	if err != nil {
		return err
	}
	assigned, err := store.Import(ctx, mgr.GetRosterStore(), cfg.TeamKey, slots)
	if err != nil {
		return err
	}
	contract.LogInfo("Imported %d slots for team %q (%d new player IDs)", len(slots), cfg.TeamKey, assigned)
	return nil
}

// ExecuteColumns lists the grid columns with their tooltip descriptions.
func ExecuteColumns(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	columns := BuildColumns(cfg.StatConfigs(), ColumnOptions{
		Mode:      cfg.Mode,
		IsPitcher: cfg.IsPitcher,
		Money:     true,
	})
	return outwriter.PrintColumns(DescribeColumns(columns), cfg)
}

// warnFallbacks reports rate categories that are summed rather than recomputed.
func warnFallbacks(fields []string) {
	if len(fields) == 0 {
		return
	}
	contract.LogWarn("Rate categories without a formula are summed", errors.New(strings.Join(fields, ", ")))
}

// HasMoney reports whether any rostered entity carries a price, salary or contract.
func HasMoney(slots []schema.RosterSlot) bool {
	for _, s := range slots {
		e := s.Entity
		if e != nil && (e.Price != nil || e.Salary != nil || e.ContractYears != nil) {
			return true
		}
	}
	return false
}

// countEntities counts the filled slots.
func countEntities(slots []schema.RosterSlot) int {
	n := 0
	for _, s := range slots {
		if s.Entity != nil {
			n++
		}
	}
	return n
}
