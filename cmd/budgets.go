package cmd

import (
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/outwriter"
	"github.com/beaconlabs/beacon/schema"
	"github.com/spf13/cobra"
)

// budgetsCmd shows only the budget comparison tables of a category.
var budgetsCmd = &cobra.Command{
	Use:   "budgets [report-path]",
	Short: "Show the performance and timing budget comparison tables.",
	Long: `Extract the budget comparison tables from a report category.

Budget audits compare observed page behavior against configured budgets:
- performance-budget: resource counts and sizes per resource type
- timing-budget: measured timings against their targets

Tables are projected exactly as the report producer laid them out: the
producer's column headings, one row per line item, input order preserved.

Examples:
  # Show budget tables
  beacon budgets report.json

  # Budget rows as CSV for spreadsheets
  beacon budgets report.json --output csv --output-file budgets.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		section, _, err := loadAndRender()
		if err != nil {
			contract.LogFatal("Cannot render report", err)
		}

		budgets := &schema.BudgetSection{}
		if s := section.Section(schema.BudgetsClump); s != nil {
			budgets.Tables = s.Budgets
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteBudgets(budgets, cfg); err != nil {
			contract.LogFatal("Cannot write budget tables", err)
		}
	},
}
