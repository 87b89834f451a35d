// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Beacon MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Beacon Render Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: render_category ---
	s.AddTool(mcp.NewTool("render_category",
		mcp.WithDescription("Render a report category into its ordered display sections: metrics, opportunities, diagnostics, passed, not applicable, budgets."),
		mcp.WithString("report_path", mcp.Description("Path to the report JSON document."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category id to render. Defaults to 'performance'.")),
		mcp.WithBoolean("strict", mcp.Description("Fail on missing group metadata instead of degrading to warnings.")),
	), h.handleRenderCategory)

	// --- 2. Tool: list_opportunities ---
	s.AddTool(mcp.NewTool("list_opportunities",
		mcp.WithDescription("List a category's optimization opportunities ranked by estimated savings."),
		mcp.WithString("report_path", mcp.Description("Path to the report JSON document."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category id to render. Defaults to 'performance'.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of opportunities returned.")),
	), h.handleListOpportunities)

	// --- 3. Tool: get_budget_tables ---
	s.AddTool(mcp.NewTool("get_budget_tables",
		mcp.WithDescription("Extract the performance and timing budget comparison tables from a report category."),
		mcp.WithString("report_path", mcp.Description("Path to the report JSON document."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category id to render. Defaults to 'performance'.")),
	), h.handleGetBudgetTables)

	return s
}

// StartMCPServer starts the Beacon MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
