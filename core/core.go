// Package core has the clumping, ranking and composition logic that turns a
// report category into ordered render sections.
package core

import (
	"errors"
	"fmt"

	"github.com/beaconlabs/beacon/schema"
)

// Fixed section headers for clumps whose title does not come from the
// report's group metadata.
const (
	PassedSectionTitle        = "Passed audits"
	NotApplicableSectionTitle = "Not applicable"
	BudgetsSectionTitle       = "Budgets"
)

// Composer assembles one category's sections. Renderer formats generic clump
// members; Strict makes missing group metadata a hard error instead of a
// warning on the output.
type Composer struct {
	Renderer AuditRenderer
	Strict   bool
}

// NewComposer returns a composer using the given renderer, falling back to
// the standard renderer when nil.
func NewComposer(renderer AuditRenderer, strict bool) *Composer {
	if renderer == nil {
		renderer = StandardAuditRenderer{}
	}
	return &Composer{Renderer: renderer, Strict: strict}
}

// RenderCategory turns one category and its group metadata into an ordered
// section list: metrics, opportunities, diagnostics, passed, not applicable,
// budgets. Empty clumps are omitted, as is the budgets section when neither
// budget audit is applicable. Inputs are never mutated.
func (cp *Composer) RenderCategory(category *schema.Category, groups map[string]schema.CategoryGroup) (*schema.CategorySection, error) {
	if category == nil {
		return nil, errors.New("no category to render")
	}

	out := &schema.CategorySection{
		CategoryID: category.ID,
		Title:      category.Title,
		Score:      category.Score,
	}
	if err := cp.checkGroups(category, groups, out); err != nil {
		return nil, err
	}

	clumps := ClumpAuditRefs(category.AuditRefs)

	if len(clumps.Metrics) > 0 {
		section := cp.groupedSection(schema.MetricsClump, schema.GroupMetrics, groups)
		section.Metrics = FormatMetrics(clumps.Metrics)
		out.Sections = append(out.Sections, section)
	}
	if len(clumps.Opportunities) > 0 {
		section := cp.groupedSection(schema.OpportunitiesClump, schema.GroupLoadOpportunities, groups)
		section.Opportunities = RankOpportunities(clumps.Opportunities)
		out.Sections = append(out.Sections, section)
	}
	if len(clumps.Diagnostics) > 0 {
		section := cp.groupedSection(schema.DiagnosticsClump, schema.GroupDiagnostics, groups)
		section.Audits = cp.renderAll(clumps.Diagnostics)
		out.Sections = append(out.Sections, section)
	}
	if len(clumps.Passed) > 0 {
		out.Sections = append(out.Sections, schema.Section{
			Clump:  schema.PassedClump,
			Title:  PassedSectionTitle,
			Audits: cp.renderAll(clumps.Passed),
		})
	}
	if len(clumps.NotApplicable) > 0 {
		out.Sections = append(out.Sections, schema.Section{
			Clump:  schema.NotApplicableClump,
			Title:  NotApplicableSectionTitle,
			Audits: cp.renderAll(clumps.NotApplicable),
		})
	}
	if budgets := BuildBudgetTables(findRef(clumps.Budgets, schema.PerformanceBudgetAuditID), findRef(clumps.Budgets, schema.TimingBudgetAuditID)); budgets != nil {
		out.Sections = append(out.Sections, schema.Section{
			Clump:   schema.BudgetsClump,
			Title:   BudgetsSectionTitle,
			Budgets: budgets.Tables,
		})
	}
	return out, nil
}

// checkGroups verifies that every group referenced by the category has
// metadata. Missing metadata fails the render in strict mode and becomes a
// warning otherwise.
func (cp *Composer) checkGroups(category *schema.Category, groups map[string]schema.CategoryGroup, out *schema.CategorySection) error {
	seen := make(map[string]struct{})
	for i := range category.AuditRefs {
		g := category.AuditRefs[i].Group
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if _, ok := groups[g]; ok {
			continue
		}
		if cp.Strict {
			return fmt.Errorf("category %q references unknown group %q", category.ID, g)
		}
		out.Warnings = append(out.Warnings, fmt.Sprintf("no metadata for group %q; section left unlabeled", g))
	}
	return nil
}

// groupedSection builds a section header from group metadata. A missing
// entry leaves the section unlabeled; checkGroups has already recorded the
// warning for it.
func (cp *Composer) groupedSection(clump schema.ClumpKey, groupID string, groups map[string]schema.CategoryGroup) schema.Section {
	section := schema.Section{Clump: clump}
	if meta, ok := groups[groupID]; ok {
		section.Title = meta.Title
		section.Description = meta.Description
	}
	return section
}

func (cp *Composer) renderAll(refs []schema.AuditRef) []schema.RenderedAudit {
	audits := make([]schema.RenderedAudit, 0, len(refs))
	for i := range refs {
		audits = append(audits, cp.Renderer.RenderAudit(&refs[i]))
	}
	return audits
}

func findRef(refs []schema.AuditRef, id string) *schema.AuditRef {
	for i := range refs {
		if refs[i].ID == id {
			return &refs[i]
		}
	}
	return nil
}

// RenderCategory renders one category with the standard renderer, degrading
// missing group metadata to warnings.
func RenderCategory(category *schema.Category, groups map[string]schema.CategoryGroup) (*schema.CategorySection, error) {
	return NewComposer(nil, false).RenderCategory(category, groups)
}

// RenderReportCategory renders the named category of a loaded report and
// stamps the result with the report's URL and fetch time.
func RenderReportCategory(report *schema.Report, categoryID string, renderer AuditRenderer, strict bool) (*schema.CategorySection, error) {
	category := report.Category(categoryID)
	if category == nil {
		return nil, fmt.Errorf("report has no category %q", categoryID)
	}
	section, err := NewComposer(renderer, strict).RenderCategory(category, report.CategoryGroups)
	if err != nil {
		return nil, err
	}
	section.URL = report.FinalURL
	if section.URL == "" {
		section.URL = report.RequestedURL
	}
	section.FetchTime = report.FetchTime
	return section, nil
}
