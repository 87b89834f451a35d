package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// LoadReport decodes and validates one report document, then joins each
// category's audit references to their audit results. Validation is strict:
// downstream logic pattern-matches on score display modes and relies on every
// reference resolving, so a malformed document is rejected here rather than
// patched over later.
func LoadReport(r io.Reader) (*Report, error) {
	var report Report
	dec := json.NewDecoder(r)
	if err := dec.Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if err := validateReport(&report); err != nil {
		return nil, err
	}
	joinAuditRefs(&report)
	return &report, nil
}

// LoadReportFile loads a report document from disk.
func LoadReportFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadReport(f)
}

// validateReport checks the document's structural invariants: known display
// modes, scores within [0,1], non-negative weights, and resolvable audit
// references.
func validateReport(report *Report) error {
	if len(report.Audits) == 0 {
		return fmt.Errorf("report has no audits")
	}
	if len(report.Categories) == 0 {
		return fmt.Errorf("report has no categories")
	}

	for id, audit := range report.Audits {
		if audit == nil {
			return fmt.Errorf("audit %q has no result object", id)
		}
		if audit.ID == "" {
			audit.ID = id
		} else if audit.ID != id {
			return fmt.Errorf("audit %q declares mismatched id %q", id, audit.ID)
		}
		if !audit.ScoreDisplayMode.Valid() {
			return fmt.Errorf("audit %q has unknown scoreDisplayMode %q", id, audit.ScoreDisplayMode)
		}
		if audit.Score != nil {
			if s := *audit.Score; math.IsNaN(s) || s < 0 || s > 1 {
				return fmt.Errorf("audit %q has score %v outside [0,1]", id, s)
			}
		}
	}

	for catID, cat := range report.Categories {
		if cat == nil {
			return fmt.Errorf("category %q is empty", catID)
		}
		if cat.ID == "" {
			cat.ID = catID
		}
		for _, ref := range cat.AuditRefs {
			if _, ok := report.Audits[ref.ID]; !ok {
				return fmt.Errorf("category %q references unknown audit %q", catID, ref.ID)
			}
			if ref.Weight < 0 || math.IsNaN(ref.Weight) {
				return fmt.Errorf("category %q audit %q has invalid weight %v", catID, ref.ID, ref.Weight)
			}
		}
	}
	return nil
}

// joinAuditRefs attaches each referenced audit result to its AuditRef. The
// results stay owned by the report's audit map; renderers treat them as
// read-only snapshots.
func joinAuditRefs(report *Report) {
	for _, cat := range report.Categories {
		for i := range cat.AuditRefs {
			cat.AuditRefs[i].Result = report.Audits[cat.AuditRefs[i].ID]
		}
	}
}
