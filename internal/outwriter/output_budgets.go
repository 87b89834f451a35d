package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteBudgets outputs the budget comparison tables, dispatching based on
// the output format configured.
func WriteBudgets(budgets *schema.BudgetSection, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, budgets)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVBudgets(w, budgets, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBudgetsText(w, budgets, cfg)
		}, "Wrote text")
	}
}

// writeBudgetsText displays each budget table under its audit title.
func writeBudgetsText(w io.Writer, budgets *schema.BudgetSection, cfg *contract.Config) error {
	if len(budgets.Tables) == 0 {
		_, err := fmt.Fprintf(w, "No budget tables in this report.\n")
		return err
	}
	for i := range budgets.Tables {
		if err := writeBudgetTable(w, &budgets.Tables[i], cfg); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeBudgetTable renders one budget audit's detail items: the producer's
// headings become the columns and every row keeps its input order.
func writeBudgetTable(w io.Writer, bt *schema.BudgetTable, cfg *contract.Config) error {
	title := bt.Title
	if cfg.UseEmojis {
		title = "💰 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}

	fmtFloat, _ := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)

	header := make([]string, 0, len(bt.Headings))
	for _, h := range bt.Headings {
		header = append(header, h.Label)
	}
	table.Header(header)

	var data [][]string
	for _, item := range bt.Rows {
		row := make([]string, 0, len(bt.Headings))
		for _, h := range bt.Headings {
			row = append(row, formatBudgetCell(item[h.Key], h.ValueType, fmtFloat))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatBudgetCell presents one detail value according to its column's
// declared type. Unknown types and non-numeric payloads fall back to a
// plain string rendering so malformed reports still produce a table.
func formatBudgetCell(value any, valueType string, fmtFloat func(float64) string) string {
	if value == nil {
		return ""
	}
	num, isNum := toFloat(value)
	switch valueType {
	case schema.ValueTypeBytes:
		if isNum {
			return schema.FormatBytes(num)
		}
	case schema.ValueTypeMs, schema.ValueTypeTimespanMs:
		if isNum {
			return schema.FormatMs(num)
		}
	case schema.ValueTypeNumeric:
		if isNum {
			return fmtFloat(num)
		}
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// toFloat extracts a numeric detail value. JSON decoding yields float64 but
// programmatic callers may hand in ints.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// writeCSVBudgets writes budget tables in CSV format: one row per detail
// item, with the table identity prefixed since columns vary per audit.
func writeCSVBudgets(w io.Writer, budgets *schema.BudgetSection, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{"audit_id", "column", "row", "value"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range budgets.Tables {
			bt := &budgets.Tables[i]
			for rowIdx, item := range bt.Rows {
				for _, h := range bt.Headings {
					rec := []string{
						bt.AuditID,
						h.Key,
						strconv.Itoa(rowIdx + 1),
						formatBudgetCell(item[h.Key], h.ValueType, fmtFloat),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
