package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteHistoryRuns outputs recorded render runs, dispatching based on the
// output format configured.
func WriteHistoryRuns(runs []schema.RenderRun, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVHistoryRuns(w, runs, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryRunTable(w, runs, cfg)
		}, "Wrote table")
	}
}

// writeHistoryRunTable generates and writes the human-readable run table.
func writeHistoryRunTable(w io.Writer, runs []schema.RenderRun, cfg *contract.Config) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintf(w, "No render runs recorded yet.\n")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "URL", "Category", "Score", "Opps", "Savings", "Recorded"})

	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for _, run := range runs {
		data = append(data, []string{
			strconv.FormatInt(run.ID, 10),
			contract.TruncatePath(run.URL, maxTitle),
			run.CategoryID,
			schema.FormatScore(run.CategoryScore),
			strconv.Itoa(run.Opportunities),
			schema.FormatMs(run.TotalSavingsMs),
			run.CreatedAt.Format(time.DateTime),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d runs\n", len(runs))
	return err
}

// writeCSVHistoryRuns writes render runs in CSV format.
func writeCSVHistoryRuns(w io.Writer, runs []schema.RenderRun, fmtFloat func(float64) string) error {
	header := []string{
		"id",
		"url",
		"category_id",
		"category_score",
		"fetch_time",
		"opportunities",
		"diagnostics",
		"passed",
		"total_savings_ms",
		"created_at",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, run := range runs {
			score := ""
			if run.CategoryScore != nil {
				score = fmtFloat(*run.CategoryScore)
			}
			rec := []string{
				strconv.FormatInt(run.ID, 10),
				run.URL,
				run.CategoryID,
				score,
				run.FetchTime.Format(time.RFC3339),
				strconv.Itoa(run.Opportunities),
				strconv.Itoa(run.Diagnostics),
				strconv.Itoa(run.Passed),
				fmtFloat(run.TotalSavingsMs),
				run.CreatedAt.Format(time.RFC3339),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
