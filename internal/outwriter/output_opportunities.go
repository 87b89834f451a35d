package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/parquet"
	"github.com/beaconlabs/beacon/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteOpportunities outputs ranked opportunities, dispatching based on the
// output format configured.
func WriteOpportunities(opps []schema.RenderedOpportunity, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONOpportunities(w, opps)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVOpportunities(csvWriter, opps, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WriteOpportunitiesParquet(parquet.ConvertRankedOpportunities(opps), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOpportunityTable(opps, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeOpportunityTable generates and writes the human-readable table.
func writeOpportunityTable(opps []schema.RenderedOpportunity, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Rank", "Opportunity", "Est Savings", "Sparkline", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	var totalSavings float64
	for i, opp := range opps {
		savings := schema.FormatMs(opp.ImpactMs)
		if opp.Errored {
			savings = opp.DisplayValue
		}
		totalSavings += opp.ImpactMs

		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncatePath(opp.Title, maxTitle),
			savings,
			Sparkline(opp.SparklineFraction, DefaultSparklineWidth),
			opportunityLabel(opp, cfg),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d opportunities (total estimated savings: %s)\n", len(opps), schema.FormatMs(totalSavings)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Render completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// opportunityLabel picks the plain or colored severity label, with errored
// entries labeled apart from real estimates.
func opportunityLabel(opp schema.RenderedOpportunity, cfg *contract.Config) string {
	if opp.Errored {
		if cfg.UseColors {
			return contract.GetColorRating(schema.ErrorRating)
		}
		return string(schema.ErrorRating)
	}
	if cfg.UseColors {
		return contract.GetColorLabel(opp.ImpactMs)
	}
	return schema.GetImpactLabel(opp.ImpactMs)
}

// writeCSVOpportunities writes ranked opportunities in CSV format.
func writeCSVOpportunities(w *csv.Writer, opps []schema.RenderedOpportunity, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"rank",
		"audit_id",
		"title",
		"impact_ms",
		"sparkline_fraction",
		"label",
		"display_value",
		"tooltip",
		"explanation",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, opp := range opps {
		rec := []string{
			strconv.Itoa(i + 1),
			opp.AuditID,
			opp.Title,
			fmtFloat(opp.ImpactMs),
			fmtFloat(opp.SparklineFraction),
			schema.GetImpactLabel(opp.ImpactMs),
			opp.DisplayValue,
			opp.Tooltip,
			opp.Explanation,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONOpportunities writes ranked opportunities in JSON format with rank
// and label added.
func writeJSONOpportunities(w io.Writer, opps []schema.RenderedOpportunity) error {
	return writeJSON(w, schema.EnrichOpportunities(opps))
}
