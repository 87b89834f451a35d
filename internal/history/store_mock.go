package history

import (
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"
)

// MockStore is an in-memory HistoryStore for testing.
type MockStore struct {
	Runs          []schema.RenderRun
	Opportunities map[int64][]schema.OpportunityRecord
	nextID        int64
}

var _ contract.HistoryStore = &MockStore{} // Compile-time check

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{Opportunities: make(map[int64][]schema.OpportunityRecord)}
}

// RecordRun stores the run in memory and assigns a sequential ID.
func (ms *MockStore) RecordRun(run schema.RenderRun, opps []schema.OpportunityRecord) (int64, error) {
	ms.nextID++
	run.ID = ms.nextID
	ms.Runs = append(ms.Runs, run)
	records := make([]schema.OpportunityRecord, len(opps))
	copy(records, opps)
	for i := range records {
		records[i].RunID = run.ID
	}
	ms.Opportunities[run.ID] = records
	return run.ID, nil
}

// ListRuns returns the most recent runs, newest first.
func (ms *MockStore) ListRuns(limit int) ([]schema.RenderRun, error) {
	var results []schema.RenderRun
	for i := len(ms.Runs) - 1; i >= 0 && len(results) < limit; i-- {
		results = append(results, ms.Runs[i])
	}
	return results, nil
}

// TopOpportunities returns the opportunities recorded for a run.
func (ms *MockStore) TopOpportunities(runID int64) ([]schema.OpportunityRecord, error) {
	return ms.Opportunities[runID], nil
}

// Clear drops everything stored.
func (ms *MockStore) Clear() error {
	ms.Runs = nil
	ms.Opportunities = make(map[int64][]schema.OpportunityRecord)
	return nil
}

// GetStatus reports the in-memory store state.
func (ms *MockStore) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   "mock",
		Connected: true,
		TotalRuns: len(ms.Runs),
	}
	if len(ms.Runs) > 0 {
		last := ms.Runs[len(ms.Runs)-1]
		status.LastRunID = last.ID
		status.LastRunTime = last.CreatedAt
		status.OldestRunTime = ms.Runs[0].CreatedAt
	}
	return status, nil
}

// Close is a no-op for the in-memory store.
func (ms *MockStore) Close() error {
	return nil
}
