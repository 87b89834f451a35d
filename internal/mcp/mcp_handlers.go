package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beaconlabs/beacon/core"
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// renderFromRequest loads the requested report and renders the requested
// category with the shared config as the baseline.
func (h *toolHandler) renderFromRequest(request mcp.CallToolRequest) (*schema.CategorySection, *contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("report_path", ""); p != "" {
		cfg.ReportPath = p
	}
	if c := request.GetString("category", ""); c != "" {
		cfg.Category = c
	}
	cfg.Strict = cfg.Strict || request.GetBool("strict", false)
	if err := cfg.RequireReportPath(); err != nil {
		return nil, nil, err
	}

	report, err := schema.LoadReportFile(cfg.ReportPath)
	if err != nil {
		return nil, nil, err
	}
	section, err := core.RenderReportCategory(report, cfg.Category, nil, cfg.Strict)
	if err != nil {
		return nil, nil, err
	}
	return section, cfg, nil
}

func (h *toolHandler) handleRenderCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, _, err := h.renderFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(section, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListOpportunities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, cfg, err := h.renderFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	var ranked []schema.RenderedOpportunity
	if opps := section.Section(schema.OpportunitiesClump); opps != nil {
		ranked = opps.Opportunities
	}
	if cfg.ResultLimit > 0 && len(ranked) > cfg.ResultLimit {
		ranked = ranked[:cfg.ResultLimit]
	}

	enriched := schema.EnrichOpportunities(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBudgetTables(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, _, err := h.renderFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}

	budgets := &schema.BudgetSection{}
	if s := section.Section(schema.BudgetsClump); s != nil {
		budgets.Tables = s.Budgets
	}

	jsonData, _ := json.MarshalIndent(budgets, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
