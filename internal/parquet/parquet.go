// Package parquet provides data structures and functions for exporting
// render history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/beaconlabs/beacon/schema"
	"github.com/parquet-go/parquet-go"
)

// RenderRunRow represents a single category render run with its summary
// counts. This struct maps to the beacon_render_runs database table.
type RenderRunRow struct {
	// RunID is the unique identifier for this render run
	RunID int64 `parquet:"run_id,snappy"`

	// URL is the page the report was produced for
	URL string `parquet:"url,snappy"`

	// CategoryID names the rendered category, e.g. "performance"
	CategoryID string `parquet:"category_id,snappy"`

	// CategoryScore is the category's aggregate score in [0,1] (nullable)
	CategoryScore *float64 `parquet:"category_score,optional,snappy"`

	// FetchTime is when the report was gathered (TIMESTAMP with nanosecond precision)
	FetchTime time.Time `parquet:"fetch_time,snappy"`

	// OpportunityCount is the number of ranked opportunities in the run
	OpportunityCount int32 `parquet:"opportunity_count,snappy"`

	// DiagnosticCount is the number of failing diagnostics in the run
	DiagnosticCount int32 `parquet:"diagnostic_count,snappy"`

	// PassedCount is the number of passed audits in the run
	PassedCount int32 `parquet:"passed_count,snappy"`

	// TotalSavingsMs is the summed estimated savings across all opportunities
	TotalSavingsMs float64 `parquet:"total_savings_ms,snappy"`

	// CreatedAt is when the run was recorded
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// OpportunityRow represents one ranked opportunity belonging to a render run.
// This struct maps to the beacon_opportunities database table.
type OpportunityRow struct {
	// RunID references the parent render run
	RunID int64 `parquet:"run_id,snappy"`

	// Rank is the opportunity's position by descending estimated savings
	Rank int32 `parquet:"opportunity_rank,snappy"`

	// AuditID is the opportunity audit's id within the report
	AuditID string `parquet:"audit_id,snappy"`

	// Title is the opportunity's display title
	Title string `parquet:"title,snappy"`

	// ImpactMs is the estimated savings in milliseconds
	ImpactMs float64 `parquet:"impact_ms,snappy"`

	// Label is the severity label derived from ImpactMs
	Label string `parquet:"label,snappy"`
}

// WriteRenderRunsParquet writes a slice of RenderRunRow structs to a Parquet file.
func WriteRenderRunsParquet(data []RenderRunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RenderRunRow struct tags
	writer := parquet.NewGenericWriter[RenderRunRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteOpportunitiesParquet writes a slice of OpportunityRow structs to a Parquet file.
func WriteOpportunitiesParquet(data []OpportunityRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the OpportunityRow struct tags
	writer := parquet.NewGenericWriter[OpportunityRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRenderRuns converts schema.RenderRun records to RenderRunRow for Parquet export.
func ConvertRenderRuns(runs []schema.RenderRun) []RenderRunRow {
	result := make([]RenderRunRow, len(runs))
	for i, run := range runs {
		result[i] = RenderRunRow{
			RunID:            run.ID,
			URL:              run.URL,
			CategoryID:       run.CategoryID,
			CategoryScore:    run.CategoryScore,
			FetchTime:        run.FetchTime,
			OpportunityCount: int32(run.Opportunities),
			DiagnosticCount:  int32(run.Diagnostics),
			PassedCount:      int32(run.Passed),
			TotalSavingsMs:   run.TotalSavingsMs,
			CreatedAt:        run.CreatedAt,
		}
	}
	return result
}

// ConvertOpportunityRecords converts schema.OpportunityRecord rows to OpportunityRow for Parquet export.
func ConvertOpportunityRecords(records []schema.OpportunityRecord) []OpportunityRow {
	result := make([]OpportunityRow, len(records))
	for i, record := range records {
		result[i] = OpportunityRow{
			RunID:    record.RunID,
			Rank:     int32(record.Rank),
			AuditID:  record.AuditID,
			Title:    record.Title,
			ImpactMs: record.ImpactMs,
			Label:    record.Label,
		}
	}
	return result
}

// ConvertRankedOpportunities flattens a rendered category's ranked
// opportunities into OpportunityRow values for direct export, without a
// history run id.
func ConvertRankedOpportunities(opps []schema.RenderedOpportunity) []OpportunityRow {
	result := make([]OpportunityRow, len(opps))
	for i, opp := range opps {
		result[i] = OpportunityRow{
			Rank:     int32(i + 1),
			AuditID:  opp.AuditID,
			Title:    opp.Title,
			ImpactMs: opp.ImpactMs,
			Label:    schema.GetImpactLabel(opp.ImpactMs),
		}
	}
	return result
}
