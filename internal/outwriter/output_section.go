package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/parquet"
	"github.com/beaconlabs/beacon/schema"

	"github.com/olekukonko/tablewriter"
)

// getDisplayNameForClump returns the display name with emoji for a given clump.
func getDisplayNameForClump(key schema.ClumpKey, useEmojis bool) string {
	if !useEmojis {
		return strings.ToUpper(string(key))
	}
	switch key {
	case schema.MetricsClump:
		return "📊 METRICS"
	case schema.OpportunitiesClump:
		return "🚀 OPPORTUNITIES"
	case schema.DiagnosticsClump:
		return "🔍 DIAGNOSTICS"
	case schema.PassedClump:
		return "✅ PASSED"
	case schema.NotApplicableClump:
		return "➖ NOT APPLICABLE"
	case schema.BudgetsClump:
		return "💰 BUDGETS"
	default:
		return strings.ToUpper(string(key))
	}
}

// WriteCategorySection outputs a fully rendered category, dispatching based
// on the output format configured.
func WriteCategorySection(section *schema.CategorySection, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, section)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCategorySection(w, section, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		opps := section.Section(schema.OpportunitiesClump)
		var ranked []schema.RenderedOpportunity
		if opps != nil {
			ranked = opps.Opportunities
		}
		return parquet.WriteOpportunitiesParquet(parquet.ConvertRankedOpportunities(ranked), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCategorySectionText(w, section, cfg, duration)
		}, "Wrote text")
	}
}

// writeCategorySectionText displays the rendered category in human-readable
// text format: a report header followed by one table per section.
func writeCategorySectionText(w io.Writer, section *schema.CategorySection, cfg *contract.Config, duration time.Duration) error {
	if err := writeCategoryHeader(w, section, cfg); err != nil {
		return err
	}

	for i := range section.Sections {
		s := &section.Sections[i]
		if _, err := fmt.Fprintf(w, "%s: %s\n", getDisplayNameForClump(s.Clump, cfg.UseEmojis), s.Title); err != nil {
			return err
		}
		if s.Description != "" {
			if _, err := fmt.Fprintf(w, "%s\n", s.Description); err != nil {
				return err
			}
		}
		if err := writeSectionTable(w, s, cfg); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Render completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCategoryHeader prints the report context: title, score, URL, fetch
// time, and any non-fatal warnings collected during rendering.
func writeCategoryHeader(w io.Writer, section *schema.CategorySection, cfg *contract.Config) error {
	title := fmt.Sprintf("%s (score: %s)", section.Title, schema.FormatScore(section.Score))
	if cfg.UseEmojis {
		title = "📋 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", strings.Repeat("=", len([]rune(title)))); err != nil {
		return err
	}
	if section.URL != "" {
		if _, err := fmt.Fprintf(w, "URL: %s\n", section.URL); err != nil {
			return err
		}
	}
	if !section.FetchTime.IsZero() {
		if _, err := fmt.Fprintf(w, "Fetched: %s\n", section.FetchTime.Format(contract.DateTimeFormat)); err != nil {
			return err
		}
	}
	for _, warning := range section.Warnings {
		if _, err := fmt.Fprintf(w, "⚠️  %s\n", warning); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	return nil
}

// writeSectionTable renders the content of one section as a table matching
// its clump shape.
func writeSectionTable(w io.Writer, s *schema.Section, cfg *contract.Config) error {
	switch s.Clump {
	case schema.MetricsClump:
		return writeMetricsTable(w, s.Metrics, cfg)
	case schema.OpportunitiesClump:
		return writeSectionOpportunityTable(w, s.Opportunities, cfg)
	case schema.BudgetsClump:
		for i := range s.Budgets {
			if err := writeBudgetTable(w, &s.Budgets[i], cfg); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeAuditTable(w, s.Audits, cfg)
	}
}

// writeMetricsTable renders the metric-group audits.
func writeMetricsTable(w io.Writer, metrics []schema.RenderedMetric, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value", "Rating"})

	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, m := range metrics {
		data = append(data, []string{
			contract.TruncatePath(m.Title, maxTitle),
			m.DisplayValue,
			ratingLabel(m.Rating, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeSectionOpportunityTable renders the ranked opportunities inside a
// full category display. The standalone opportunities command carries its
// own footer, so this variant stays bare.
func writeSectionOpportunityTable(w io.Writer, opps []schema.RenderedOpportunity, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Opportunity", "Est Savings", "Sparkline", "Label"})

	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, opp := range opps {
		savings := schema.FormatMs(opp.ImpactMs)
		if opp.Errored {
			savings = opp.DisplayValue
		}
		data = append(data, []string{
			contract.TruncatePath(opp.Title, maxTitle),
			savings,
			Sparkline(opp.SparklineFraction, DefaultSparklineWidth),
			opportunityLabel(opp, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeAuditTable renders the generic clumps: diagnostics, passed, and not
// applicable audits all share one shape.
func writeAuditTable(w io.Writer, audits []schema.RenderedAudit, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Audit", "Value", "Rating"})

	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, a := range audits {
		value := a.DisplayValue
		if a.Errored && a.Tooltip != "" {
			value = fmt.Sprintf("%s (%s)", a.DisplayValue, a.Tooltip)
		}
		data = append(data, []string{
			contract.TruncatePath(a.Title, maxTitle),
			value,
			ratingLabel(a.Rating, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// ratingLabel picks the plain or colored rating label.
func ratingLabel(rating schema.Rating, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorRating(rating)
	}
	return string(rating)
}

// writeCSVCategorySection flattens the rendered category into one row per
// entry so the whole report round-trips through a single CSV stream.
func writeCSVCategorySection(w io.Writer, section *schema.CategorySection, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{"clump", "audit_id", "title", "display_value", "rating", "impact_ms"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range section.Sections {
			s := &section.Sections[i]
			if err := writeCSVSectionRows(csvWriter, s, fmtFloat); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSVSectionRows(w *csv.Writer, s *schema.Section, fmtFloat func(float64) string) error {
	clump := string(s.Clump)
	switch s.Clump {
	case schema.MetricsClump:
		for _, m := range s.Metrics {
			rec := []string{clump, m.AuditID, m.Title, m.DisplayValue, string(m.Rating), ""}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	case schema.OpportunitiesClump:
		for _, o := range s.Opportunities {
			rec := []string{clump, o.AuditID, o.Title, o.DisplayValue, string(o.Rating), fmtFloat(o.ImpactMs)}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	case schema.BudgetsClump:
		// Budget tables are heterogeneous; the budgets command carries its
		// own CSV shape. Here only the table identity is recorded.
		for i := range s.Budgets {
			rec := []string{clump, s.Budgets[i].AuditID, s.Budgets[i].Title, "", "", ""}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	default:
		for _, a := range s.Audits {
			rec := []string{clump, a.AuditID, a.Title, a.DisplayValue, string(a.Rating), ""}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
