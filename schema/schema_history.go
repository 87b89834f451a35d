package schema

import "time"

// RenderRun is the persisted summary of one category render: enough to track
// score and savings movement for a URL across runs.
type RenderRun struct {
	ID             int64     `json:"id"`
	URL            string    `json:"url"`
	CategoryID     string    `json:"category_id"`
	CategoryScore  *float64  `json:"category_score"`
	FetchTime      time.Time `json:"fetch_time"`
	Opportunities  int       `json:"opportunities"`
	Diagnostics    int       `json:"diagnostics"`
	Passed         int       `json:"passed"`
	TotalSavingsMs float64   `json:"total_savings_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// OpportunityRecord is one persisted ranked opportunity belonging to a run.
type OpportunityRecord struct {
	RunID    int64   `json:"run_id"`
	Rank     int     `json:"rank"`
	AuditID  string  `json:"audit_id"`
	Title    string  `json:"title"`
	ImpactMs float64 `json:"impact_ms"`
	Label    string  `json:"label"`
}

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunID     int64     `json:"last_run_id"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
}

// NewRenderRun summarizes a rendered category into a history row. The run ID
// and creation time are assigned by the store.
func NewRenderRun(section *CategorySection) RenderRun {
	run := RenderRun{
		URL:           section.URL,
		CategoryID:    section.CategoryID,
		CategoryScore: section.Score,
		FetchTime:     section.FetchTime,
	}
	for _, s := range section.Sections {
		switch s.Clump {
		case OpportunitiesClump:
			run.Opportunities = len(s.Opportunities)
			for _, o := range s.Opportunities {
				run.TotalSavingsMs += o.ImpactMs
			}
		case DiagnosticsClump:
			run.Diagnostics = len(s.Audits)
		case PassedClump:
			run.Passed = len(s.Audits)
		}
	}
	return run
}

// OpportunityRecords flattens a rendered category's ranked opportunities
// into persistable rows. RunID is assigned by the store.
func OpportunityRecords(section *CategorySection) []OpportunityRecord {
	opps := section.Section(OpportunitiesClump)
	if opps == nil {
		return nil
	}
	records := make([]OpportunityRecord, 0, len(opps.Opportunities))
	for i, o := range opps.Opportunities {
		records = append(records, OpportunityRecord{
			Rank:     i + 1,
			AuditID:  o.AuditID,
			Title:    o.Title,
			ImpactMs: o.ImpactMs,
			Label:    GetImpactLabel(o.ImpactMs),
		})
	}
	return records
}
