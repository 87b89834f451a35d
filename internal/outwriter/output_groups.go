package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"
)

// groupDefinition describes one output clump for the static reference
// display. This does not require a loaded report.
type groupDefinition struct {
	Clump     schema.ClumpKey `json:"clump"`
	Purpose   string          `json:"purpose"`
	Placement string          `json:"placement"`
	GroupIDs  []string        `json:"group_ids,omitempty"`
}

// groupsRenderModel is the complete render model for the groups command.
type groupsRenderModel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Groups      []groupDefinition `json:"groups"`
}

// buildGroupsRenderModel constructs the static clump reference.
func buildGroupsRenderModel() *groupsRenderModel {
	return &groupsRenderModel{
		Title:       "Beacon Output Sections",
		Description: "Each audit lands in exactly the first section whose rule matches it",
		Groups: []groupDefinition{
			{
				Clump:     schema.MetricsClump,
				Purpose:   "Core user-experience measurements shown at the top of the report",
				Placement: "Audits whose group is 'metrics'",
				GroupIDs:  []string{schema.GroupMetrics},
			},
			{
				Clump:     schema.OpportunitiesClump,
				Purpose:   "Failed load-opportunity audits ranked by estimated savings",
				Placement: "Audits whose group is 'load-opportunities' and that do not show as passed",
				GroupIDs:  []string{schema.GroupLoadOpportunities},
			},
			{
				Clump:     schema.DiagnosticsClump,
				Purpose:   "Failed diagnostic audits with more page detail",
				Placement: "Audits whose group is 'diagnostics' and that do not show as passed",
				GroupIDs:  []string{schema.GroupDiagnostics},
			},
			{
				Clump:     schema.PassedClump,
				Purpose:   "Audits that met their target, collapsed out of the way",
				Placement: "Any grouped audit that shows as passed",
			},
			{
				Clump:     schema.NotApplicableClump,
				Purpose:   "Audits that could not apply to this page",
				Placement: "Audits whose display mode is 'notApplicable'",
			},
			{
				Clump:     schema.BudgetsClump,
				Purpose:   "Performance and timing budget comparison tables",
				Placement: "The fixed budget audit ids, rendered as raw detail tables",
				GroupIDs:  []string{schema.PerformanceBudgetAuditID, schema.TimingBudgetAuditID},
			},
		},
	}
}

// WriteGroupDefinitions displays the formal definitions of all output
// sections. This is a static display that does not require a report.
func WriteGroupDefinitions(cfg *contract.Config) error {
	renderModel := buildGroupsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVGroups(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGroupsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// writeGroupsText displays the clump reference in human-readable text format.
func writeGroupsText(w io.Writer, renderModel *groupsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	if cfg.UseEmojis {
		title = "🗂️  " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len([]rune(title)))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, g := range renderModel.Groups {
		if _, err := fmt.Fprintf(w, "%s: %s\n", getDisplayNameForClump(g.Clump, cfg.UseEmojis), g.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Placement: %s\n", g.Placement); err != nil {
			return err
		}
		if len(g.GroupIDs) > 0 {
			if _, err := fmt.Fprintf(w, "   Ids: %s\n", strings.Join(g.GroupIDs, ", ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVGroups writes the clump reference in CSV format.
func writeCSVGroups(w io.Writer, renderModel *groupsRenderModel) error {
	header := []string{"clump", "purpose", "placement", "group_ids"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, g := range renderModel.Groups {
			rec := []string{
				string(g.Clump),
				g.Purpose,
				g.Placement,
				strings.Join(g.GroupIDs, "|"),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
