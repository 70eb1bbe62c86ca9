package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/statgrid/core"
	"github.com/huangsam/statgrid/core/statfmt"
	"github.com/huangsam/statgrid/core/tooltip"
	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// totalsResult is the payload of aggregate_totals.
type totalsResult struct {
	IsPitcher bool               `json:"is_pitcher"`
	Totals    map[string]float64 `json:"totals"`
	Formatted map[string]string  `json:"formatted"`
	Summed    []string           `json:"summed_rate_fields,omitempty"`
}

// gridResult is the payload of render_grid.
type gridResult struct {
	Columns []tooltip.Entry   `json:"columns"`
	Sort    *schema.SortState `json:"sort,omitempty"`
	RowIDs  []string          `json:"row_ids"`
	Rows    [][]string        `json:"rows"`
	Totals  []string          `json:"totals"`
}

// requestConfig clones the base config with the roster-independent arguments applied.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	cfg.IsPitcher = request.GetBool("pitcher", cfg.IsPitcher)
	cfg.UseColors = false
	cfg.RosterPath = ""
	if team := request.GetString("team", ""); team != "" {
		cfg.TeamKey = team
	}
	return cfg
}

// loadSlots reads the roster argument, falling back to the stored team.
func (h *toolHandler) loadSlots(ctx context.Context, request mcp.CallToolRequest, cfg *contract.Config) ([]schema.RosterSlot, error) {
	if raw := request.GetString("roster", ""); raw != "" {
		slots, err := core.DecodeRoster([]byte(raw), false)
		if err != nil {
			return nil, fmt.Errorf("invalid roster JSON: %w", err)
		}
		return slots, nil
	}
	if cfg.TeamKey == "" {
		return nil, errors.New("either roster or team is required")
	}
	return core.LoadRoster(ctx, cfg, h.mgr)
}

func (h *toolHandler) handleAggregateTotals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	slots, err := h.loadSlots(ctx, request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := core.BuildGrid(slots, cfg)
	formatted := make(map[string]string, len(out.Totals))
	byField := make(map[string]schema.StatFieldConfig, len(out.Configs))
	for _, c := range out.Configs {
		byField[c.Field] = c
	}
	for field, v := range out.Totals {
		c, ok := byField[field]
		if !ok {
			c = schema.StatFieldConfig{Field: field}
		}
		formatted[field] = statfmt.FormatStat(schema.Some(v), c)
	}

	jsonData, _ := json.MarshalIndent(totalsResult{
		IsPitcher: cfg.IsPitcher,
		Totals:    out.Totals,
		Formatted: formatted,
		Summed:    out.Fallbacks,
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderGrid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if m := request.GetString("mode", ""); m != "" {
		if _, ok := schema.ValidDisplayModes[schema.DisplayMode(m)]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid mode %q: must be three-line or accrued-only", m)), nil
		}
		cfg.Mode = schema.DisplayMode(m)
	}
	if cfg.Mode == "" {
		cfg.Mode = schema.ThreeLineMode
	}
	if s := request.GetString("sort", ""); s != "" {
		state, err := contract.ParseSortString(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort: %v", err)), nil
		}
		cfg.Sort = state
	}

	slots, err := h.loadSlots(ctx, request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := core.BuildGrid(slots, cfg)
	jsonData, _ := json.MarshalIndent(gridResult{
		Columns: core.DescribeColumns(out.Columns),
		Sort:    cfg.Sort,
		RowIDs:  out.Table.RowIDs,
		Rows:    out.Table.Rows,
		Totals:  out.Table.Footer,
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDescribeColumn(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := request.GetString("title", "")
	key := request.GetString("key", title)
	if title == "" && key == "" {
		return mcp.NewToolResultError("title is required"), nil
	}
	desc, ok := tooltip.Resolve(title, key)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no description for column %q", title)), nil
	}
	return mcp.NewToolResultText(desc), nil
}

func (h *toolHandler) handleListTeams(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.mgr == nil || h.mgr.GetRosterStore() == nil {
		return mcp.NewToolResultError("roster store is not available"), nil
	}
	teams, err := h.mgr.GetRosterStore().Teams(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list teams: %v", err)), nil
	}
	if teams == nil {
		teams = []string{}
	}
	jsonData, _ := json.MarshalIndent(teams, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
