// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the statgrid MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Statgrid Roster Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	rosterArg := mcp.WithString("roster", mcp.Description("Roster JSON: a list of slots, or an object with \"slots\" or \"free_agents\". Takes precedence over team."))
	teamArg := mcp.WithString("team", mcp.Description("Team key of a roster saved with the import command."))
	pitcherArg := mcp.WithBoolean("pitcher", mcp.Description("Use the pitching categories instead of the hitting ones."))

	// --- 1. Tool: aggregate_totals ---
	s.AddTool(mcp.NewTool("aggregate_totals",
		mcp.WithDescription("Compute team totals for a roster. Counting stats are summed and rate stats are recomputed from their components."),
		rosterArg, teamArg, pitcherArg,
	), h.handleAggregateTotals)

	// --- 2. Tool: render_grid ---
	s.AddTool(mcp.NewTool("render_grid",
		mcp.WithDescription("Render the roster grid: one or three rows per slot with formatted cells and a totals row."),
		rosterArg, teamArg, pitcherArg,
		mcp.WithString("mode", mcp.Description("Rows per slot. Defaults to 'three-line'."), mcp.Enum("three-line", "accrued-only")),
		mcp.WithString("sort", mcp.Description("Sort as key[:asc|desc], e.g. 'HR:desc'. Omit for roster order.")),
	), h.handleRenderGrid)

	// --- 3. Tool: describe_column ---
	s.AddTool(mcp.NewTool("describe_column",
		mcp.WithDescription("Look up the long description of a grid column header."),
		mcp.WithString("title", mcp.Description("The header title, e.g. 'ERA'."), mcp.Required()),
		mcp.WithString("key", mcp.Description("The column key, used when the title has no description.")),
	), h.handleDescribeColumn)

	// --- 4. Tool: list_teams ---
	s.AddTool(mcp.NewTool("list_teams",
		mcp.WithDescription("List the team keys saved in the roster store."),
	), h.handleListTeams)

	return s
}

// StartMCPServer starts the statgrid MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
