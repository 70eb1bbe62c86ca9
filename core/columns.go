package core

import (
	"github.com/huangsam/statgrid/core/expand"
	"github.com/huangsam/statgrid/core/grid"
	"github.com/huangsam/statgrid/core/statfmt"
	"github.com/huangsam/statgrid/schema"
)

// Column widths in display units.
const (
	positionWidth = 30
	nameWidth     = 120
	teamWidth     = 35
	periodWidth   = 45
	statWidth     = 40
	moneyWidth    = 40
)

// ColumnOptions tunes how BuildColumns lays out a grid.
type ColumnOptions struct {
	Mode       schema.DisplayMode
	IsPitcher  bool
	Abbreviate bool // render player names as "A. Judge"
	Money      bool // include price, salary and contract columns
}

// BuildColumns assembles the grid columns for one side of a roster: identity
// columns, the period column, the static counting stats and the league categories.
func BuildColumns(configs []schema.StatFieldConfig, opts ColumnOptions) []grid.Column {
	cols := []grid.Column{
		identityColumn(schema.KeyPosition, "Pos", positionWidth, opts.Mode, nil),
		identityColumn(schema.KeyName, "Player", nameWidth, opts.Mode, func(v any) string {
			name := statfmt.FormatValue(v, 0)
			if opts.Abbreviate && name != schema.Placeholder {
				return schema.AbbreviateName(name)
			}
			return name
		}),
		identityColumn(schema.KeyTeam, "Team", teamWidth, opts.Mode, nil),
	}
	if opts.Mode != schema.AccruedOnlyMode {
		cols = append(cols, grid.Column{
			Key:   schema.KeyPeriod,
			Title: "Period",
			Width: periodWidth,
		})
	}

	for _, field := range schema.StaticCountingFields(opts.IsPitcher) {
		cols = append(cols, statColumn(schema.StatFieldConfig{Field: field, Label: field}))
	}
	for _, c := range configs {
		cols = append(cols, statColumn(c))
	}

	if opts.Money {
		money := func(v any) string { return statfmt.FormatMoney(optionalOf(v)) }
		cols = append(cols,
			identityColumn(schema.KeyPrice, "$", moneyWidth, opts.Mode, money),
			identityColumn(schema.KeySalary, "Sal", moneyWidth, opts.Mode, money),
			identityColumn(schema.KeyContract, "Yrs", moneyWidth, opts.Mode, nil),
		)
	}
	return cols
}

// identityColumn renders a slot-level field only on the row that carries the
// slot's identity; the other rows of a block stay blank.
func identityColumn(key, title string, width int, mode schema.DisplayMode, format func(any) string) grid.Column {
	if format == nil {
		format = func(v any) string { return statfmt.FormatValue(v, 0) }
	}
	return grid.Column{
		Key:      key,
		Title:    title,
		Width:    width,
		Sortable: true,
		Render: func(v any, row grid.Row, _ int) string {
			if !expand.IdentityRow(row, mode) {
				return ""
			}
			return format(v)
		},
	}
}

// statColumn reads a stat from the row's snapshot and formats it with the category's convention.
func statColumn(cfg schema.StatFieldConfig) grid.Column {
	field := cfg.Field
	return grid.Column{
		Key:       field,
		Title:     cfg.DisplayLabel(),
		Width:     statWidth,
		Sortable:  true,
		SortValue: func(row grid.Row) any { return row.Stat(field) },
		Accessor:  func(row grid.Row) any { return row.Stat(field) },
		Render: func(v any, _ grid.Row, _ int) string {
			return statfmt.FormatStat(optionalOf(v), cfg)
		},
	}
}

// optionalOf converts a cell value back into an Optional number.
func optionalOf(v any) schema.Optional {
	switch val := v.(type) {
	case schema.Optional:
		return val
	case float64:
		return schema.Some(val)
	default:
		return schema.None()
	}
}
