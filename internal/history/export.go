package history

import (
	"errors"
	"fmt"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/parquet"
)

// ExecuteHistoryExport exports the recorded render history to Parquet files.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string, limit int) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no render history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total render runs: %d\n", status.TotalRuns)

	runs, err := store.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve render runs: %w", err)
	}

	var opportunityRows []parquet.OpportunityRow
	for _, run := range runs {
		records, err := store.TopOpportunities(run.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve opportunities for run %d: %w", run.ID, err)
		}
		opportunityRows = append(opportunityRows, parquet.ConvertOpportunityRecords(records)...)
	}

	// Write render runs to Parquet
	runsFile := outputFile + ".render_runs.parquet"
	if err := parquet.WriteRenderRunsParquet(parquet.ConvertRenderRuns(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write render runs: %w", err)
	}
	fmt.Printf("Exported %d render runs to: %s\n", len(runs), runsFile)

	// Write opportunities to Parquet
	oppsFile := outputFile + ".opportunities.parquet"
	if err := parquet.WriteOpportunitiesParquet(opportunityRows, oppsFile); err != nil {
		return fmt.Errorf("failed to write opportunities: %w", err)
	}
	fmt.Printf("Exported %d opportunity records to: %s\n", len(opportunityRows), oppsFile)

	return nil
}
