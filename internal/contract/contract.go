// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/beaconlabs/beacon/schema"

// HistoryStore defines the interface for render-run persistence.
// This allows the history layer to be mocked for testing.
type HistoryStore interface {
	// RecordRun stores a run summary and its ranked opportunities,
	// returning the assigned run ID.
	RecordRun(run schema.RenderRun, opps []schema.OpportunityRecord) (int64, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.RenderRun, error)

	// TopOpportunities returns the ranked opportunities recorded for a run.
	TopOpportunities(runID int64) ([]schema.OpportunityRecord, error)

	// Clear removes all recorded runs and opportunities.
	Clear() error

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}
