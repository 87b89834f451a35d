package schema

// EnrichedOpportunity adds presentation data to a RenderedOpportunity.
type EnrichedOpportunity struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	RenderedOpportunity
}

// GetImpactLabel returns a plain text label indicating how much estimated
// savings an opportunity carries.
func GetImpactLabel(impactMs float64) string {
	switch {
	case impactMs >= 2000:
		return "Critical"
	case impactMs >= 1000:
		return "High"
	case impactMs >= 250:
		return "Moderate"
	default:
		return "Low"
	}
}

// EnrichOpportunities adds rank and label to a list of ranked opportunities.
// Input order is assumed to be the final ranking.
func EnrichOpportunities(opps []RenderedOpportunity) []EnrichedOpportunity {
	output := make([]EnrichedOpportunity, len(opps))
	for i, o := range opps {
		output[i] = EnrichedOpportunity{
			Rank:                i + 1,
			Label:               GetImpactLabel(o.ImpactMs),
			RenderedOpportunity: o,
		}
	}
	return output
}
