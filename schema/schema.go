// Package schema has the report model, view models and shared constants for all parts of beacon.
package schema

import "time"

// AuditResult is the outcome of one automated check as it appears in the
// report document. Score is nil when the audit is not scoreable; the
// ScoreDisplayMode says how the score (or its absence) should be read.
type AuditResult struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Score            *float64         `json:"score"`
	ScoreDisplayMode ScoreDisplayMode `json:"scoreDisplayMode"`
	NumericValue     *float64         `json:"numericValue,omitempty"`
	NumericUnit      string           `json:"numericUnit,omitempty"`
	DisplayValue     string           `json:"displayValue,omitempty"`
	ErrorMessage     string           `json:"errorMessage,omitempty"`
	Explanation      string           `json:"explanation,omitempty"`
	Details          *Details         `json:"details,omitempty"`
}

// Details is the structured payload attached to some audits, e.g. the line
// items of a budget comparison. Items are loosely typed row objects whose
// columns are described by Headings.
type Details struct {
	Type             string          `json:"type,omitempty"`
	Headings         []DetailHeading `json:"headings,omitempty"`
	Items            []DetailItem    `json:"items,omitempty"`
	OverallSavingsMs float64         `json:"overallSavingsMs,omitempty"`
}

// DetailItem is one row of a details table. Column values are heterogeneous;
// the matching DetailHeading's ValueType says how to present each one.
type DetailItem map[string]any

// DetailHeading describes one column of a details table.
type DetailHeading struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	ValueType string `json:"valueType,omitempty"`
}

// AuditRef links one audit into a category. Group is the display clump the
// audit belongs to and may be empty. Result is joined in from the report's
// audit map during loading and is never part of the wire format.
type AuditRef struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Group  string  `json:"group,omitempty"`

	Result *AuditResult `json:"-"`
}

// Category is a named, ordered collection of audit references.
type Category struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Score       *float64   `json:"score"`
	AuditRefs   []AuditRef `json:"auditRefs"`
}

// CategoryGroup is the display metadata for one audit group.
type CategoryGroup struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Report is one web-quality report document: audits keyed by id, categories
// referencing them, and group metadata for section headers.
type Report struct {
	GeneratorVersion string                   `json:"generatorVersion,omitempty"`
	RequestedURL     string                   `json:"requestedUrl,omitempty"`
	FinalURL         string                   `json:"finalUrl,omitempty"`
	FetchTime        time.Time                `json:"fetchTime,omitempty"`
	Audits           map[string]*AuditResult  `json:"audits"`
	Categories       map[string]*Category     `json:"categories"`
	CategoryGroups   map[string]CategoryGroup `json:"categoryGroups,omitempty"`
}

// Category returns the category with the given id, or nil.
func (r *Report) Category(id string) *Category {
	if r == nil {
		return nil
	}
	return r.Categories[id]
}

// FindAuditRef returns the category's reference to the given audit id, or nil.
func (c *Category) FindAuditRef(id string) *AuditRef {
	if c == nil {
		return nil
	}
	for i := range c.AuditRefs {
		if c.AuditRefs[i].ID == id {
			return &c.AuditRefs[i]
		}
	}
	return nil
}
