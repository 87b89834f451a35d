package cmd

import (
	"time"

	"github.com/beaconlabs/beacon/core"
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/history"
	"github.com/beaconlabs/beacon/internal/outwriter"
	"github.com/beaconlabs/beacon/schema"
	"github.com/spf13/cobra"
)

// loadAndRender loads the configured report document and renders the
// configured category.
func loadAndRender() (*schema.CategorySection, time.Duration, error) {
	start := time.Now()

	if err := cfg.RequireReportPath(); err != nil {
		return nil, 0, err
	}
	report, err := schema.LoadReportFile(cfg.ReportPath)
	if err != nil {
		return nil, 0, err
	}
	section, err := core.RenderReportCategory(report, cfg.Category, nil, cfg.Strict)
	if err != nil {
		return nil, 0, err
	}
	return section, time.Since(start), nil
}

// recordRun persists the rendered category when history tracking is enabled.
// Persistence failures degrade to warnings so rendering always wins.
func recordRun(section *schema.CategorySection) {
	if cfg.HistoryBackend == schema.NoneBackend {
		return
	}
	store, err := history.NewStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
	if err != nil {
		contract.LogWarn("history tracking disabled", err)
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.RecordRun(schema.NewRenderRun(section), schema.OpportunityRecords(section)); err != nil {
		contract.LogWarn("failed to record render run", err)
	}
}

// renderCmd renders a full category into ordered sections.
var renderCmd = &cobra.Command{
	Use:   "render [report-path]",
	Short: "Render a report category into its display sections.",
	Long: `Render one category of a web-quality report into ordered sections.

Produces the full category view:
- Metrics: the core user-experience measurements
- Opportunities: failed optimization checks ranked by estimated savings
- Diagnostics: failed checks with more page detail
- Passed audits and not applicable audits
- Budgets: performance and timing budget comparison tables

Each run is also recorded in the render history store (unless disabled),
so score and savings movement can be tracked per URL over time.

Examples:
  # Render the performance category as a set of tables
  beacon render report.json

  # Render a different category
  beacon render report.json --category accessibility

  # Machine-readable section output
  beacon render report.json --output json --output-file sections.json

  # Fail hard on reports with missing group metadata
  beacon render report.json --strict`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		section, duration, err := loadAndRender()
		if err != nil {
			contract.LogFatal("Cannot render report", err)
		}
		recordRun(section)

		ow := outwriter.NewOutWriter()
		if err := ow.WriteCategorySection(section, cfg, duration); err != nil {
			contract.LogFatal("Cannot write rendered sections", err)
		}
	},
}
