package schema

import "time"

// RenderedMetric is the display form of one metric-group audit.
type RenderedMetric struct {
	AuditID      string   `json:"audit_id"`
	Title        string   `json:"title"`
	DisplayValue string   `json:"display_value"`
	Score        *float64 `json:"score"`
	Rating       Rating   `json:"rating"`
	Tooltip      string   `json:"tooltip,omitempty"`
}

// RenderedAudit is the display form of one generic clump member. Errored
// results keep the audit visible with a marker and tooltip instead of a
// value; Explanation carries producer remarks separate from the tooltip.
type RenderedAudit struct {
	AuditID      string `json:"audit_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	DisplayValue string `json:"display_value,omitempty"`
	Rating       Rating `json:"rating"`
	Tooltip      string `json:"tooltip,omitempty"`
	Explanation  string `json:"explanation,omitempty"`
	Errored      bool   `json:"errored,omitempty"`
}

// RenderedOpportunity is a ranked optimization opportunity. ImpactMs is the
// estimated savings; SparklineFraction is ImpactMs relative to the largest
// impact in the same category, always within [0,1].
type RenderedOpportunity struct {
	RenderedAudit
	ImpactMs          float64 `json:"impact_ms"`
	SparklineFraction float64 `json:"sparkline_fraction"`
}

// BudgetTable is the direct projection of one budget audit's detail items:
// one row per item, input order preserved.
type BudgetTable struct {
	AuditID  string          `json:"audit_id"`
	Title    string          `json:"title"`
	Headings []DetailHeading `json:"headings"`
	Rows     []DetailItem    `json:"rows"`
}

// BudgetSection groups the budget comparison tables. It is omitted from the
// rendered category when neither budget audit is applicable.
type BudgetSection struct {
	Tables []BudgetTable `json:"tables"`
}

// Section is one rendered clump. Exactly one of the content slices is
// populated, according to Clump.
type Section struct {
	Clump         ClumpKey              `json:"clump"`
	Title         string                `json:"title"`
	Description   string                `json:"description,omitempty"`
	Metrics       []RenderedMetric      `json:"metrics,omitempty"`
	Opportunities []RenderedOpportunity `json:"opportunities,omitempty"`
	Audits        []RenderedAudit       `json:"audits,omitempty"`
	Budgets       []BudgetTable         `json:"budgets,omitempty"`
}

// Len returns the number of content entries in the section.
func (s *Section) Len() int {
	switch s.Clump {
	case MetricsClump:
		return len(s.Metrics)
	case OpportunitiesClump:
		return len(s.Opportunities)
	case BudgetsClump:
		return len(s.Budgets)
	default:
		return len(s.Audits)
	}
}

// CategorySection is one fully rendered category: its ordered sections plus
// enough report context to label the output. Warnings collect non-fatal
// rendering faults such as unlabeled groups.
type CategorySection struct {
	CategoryID string    `json:"category_id"`
	Title      string    `json:"title"`
	Score      *float64  `json:"score"`
	URL        string    `json:"url,omitempty"`
	FetchTime  time.Time `json:"fetch_time,omitempty"`
	Sections   []Section `json:"sections"`
	Warnings   []string  `json:"warnings,omitempty"`
}

// Section returns the rendered section for the given clump, or nil when the
// clump was empty and therefore omitted.
func (c *CategorySection) Section(key ClumpKey) *Section {
	for i := range c.Sections {
		if c.Sections[i].Clump == key {
			return &c.Sections[i]
		}
	}
	return nil
}
