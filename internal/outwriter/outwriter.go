// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// rendering commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCategorySection prints a rendered category using the configured output format.
func (ow *OutWriter) WriteCategorySection(section *schema.CategorySection, cfg *contract.Config, duration time.Duration) error {
	return WriteCategorySection(section, cfg, duration)
}

// WriteOpportunities prints ranked opportunities using the configured output format.
func (ow *OutWriter) WriteOpportunities(opps []schema.RenderedOpportunity, cfg *contract.Config, duration time.Duration) error {
	return WriteOpportunities(opps, cfg, duration)
}

// WriteBudgets prints budget comparison tables using the configured output format.
func (ow *OutWriter) WriteBudgets(budgets *schema.BudgetSection, cfg *contract.Config) error {
	return WriteBudgets(budgets, cfg)
}

// WriteGroupDefinitions prints the static clump reference using the configured output format.
func (ow *OutWriter) WriteGroupDefinitions(cfg *contract.Config) error {
	return WriteGroupDefinitions(cfg)
}

// WriteHistoryRuns prints recorded render runs using the configured output format.
func (ow *OutWriter) WriteHistoryRuns(runs []schema.RenderRun, cfg *contract.Config) error {
	return WriteHistoryRuns(runs, cfg)
}
