package core

import (
	"sort"

	"github.com/beaconlabs/beacon/schema"
)

// RankOpportunities formats opportunity references and orders them by
// estimated savings, largest first. Ties keep their input order, so repeated
// runs over the same input produce the same ranking. Sparkline fractions are
// relative to the largest impact and always within [0,1]; when every impact
// is zero all fractions are zero.
func RankOpportunities(refs []schema.AuditRef) []schema.RenderedOpportunity {
	opps := make([]schema.RenderedOpportunity, 0, len(refs))
	for i := range refs {
		opps = append(opps, renderOpportunity(&refs[i]))
	}
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].ImpactMs > opps[j].ImpactMs
	})

	var maxImpact float64
	for i := range opps {
		if opps[i].ImpactMs > maxImpact {
			maxImpact = opps[i].ImpactMs
		}
	}
	if maxImpact > 0 {
		for i := range opps {
			opps[i].SparklineFraction = clamp01(opps[i].ImpactMs / maxImpact)
		}
	}
	return opps
}

// renderOpportunity builds the display form of one opportunity. Errored
// results show the error marker and carry the producer's message verbatim in
// the tooltip; otherwise the display value is the audit's own text or the
// standard savings phrase derived from its impact.
func renderOpportunity(ref *schema.AuditRef) schema.RenderedOpportunity {
	opp := schema.RenderedOpportunity{
		RenderedAudit: renderAudit(ref),
		ImpactMs:      ComputeImpact(ref.Result),
	}
	if opp.Errored {
		return opp
	}
	if opp.DisplayValue == "" {
		opp.DisplayValue = schema.FormatSavings(opp.ImpactMs)
	}
	return opp
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
