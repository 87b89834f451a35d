package cmd

import (
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/outwriter"
	"github.com/beaconlabs/beacon/schema"
	"github.com/spf13/cobra"
)

// opportunitiesCmd shows only the ranked opportunities of a category.
var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities [report-path]",
	Short: "Show the top optimization opportunities ranked by estimated savings.",
	Long: `Rank a category's failed optimization checks by estimated savings.

Each opportunity carries:
- The estimated millisecond savings from the producer's detail payload
- A sparkline bar sized relative to the largest opportunity
- A severity label (Critical, High, Moderate, Low) from fixed thresholds

Audits that errored during collection stay visible with an error marker
instead of silently disappearing from the ranking.

Examples:
  # Top opportunities of the performance category
  beacon opportunities report.json

  # Only the five largest
  beacon opportunities report.json --limit 5

  # Export the ranking for tracking
  beacon opportunities report.json --output csv --output-file opps.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		section, duration, err := loadAndRender()
		if err != nil {
			contract.LogFatal("Cannot render report", err)
		}

		var ranked []schema.RenderedOpportunity
		if opps := section.Section(schema.OpportunitiesClump); opps != nil {
			ranked = opps.Opportunities
		}
		if cfg.ResultLimit > 0 && len(ranked) > cfg.ResultLimit {
			ranked = ranked[:cfg.ResultLimit]
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteOpportunities(ranked, cfg, duration); err != nil {
			contract.LogFatal("Cannot write opportunities", err)
		}
	},
}
