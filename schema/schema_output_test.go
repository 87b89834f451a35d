package schema_test

import (
	"testing"

	"github.com/beaconlabs/beacon/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetImpactLabel(t *testing.T) {
	tests := []struct {
		name     string
		impactMs float64
		want     string
	}{
		{"critical", 2500, "Critical"},
		{"critical boundary", 2000, "Critical"},
		{"high", 1500, "High"},
		{"high boundary", 1000, "High"},
		{"moderate", 600, "Moderate"},
		{"moderate boundary", 250, "Moderate"},
		{"low", 249, "Low"},
		{"zero", 0, "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.GetImpactLabel(tt.impactMs))
		})
	}
}

func TestEnrichOpportunities(t *testing.T) {
	opps := []schema.RenderedOpportunity{
		{RenderedAudit: schema.RenderedAudit{AuditID: "render-blocking-resources"}, ImpactMs: 2400},
		{RenderedAudit: schema.RenderedAudit{AuditID: "unused-css-rules"}, ImpactMs: 300},
		{RenderedAudit: schema.RenderedAudit{AuditID: "uses-optimized-images"}, ImpactMs: 80},
	}

	enriched := schema.EnrichOpportunities(opps)
	assert.Len(t, enriched, 3)

	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Critical", enriched[0].Label)
	assert.Equal(t, "render-blocking-resources", enriched[0].AuditID)

	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, "Moderate", enriched[1].Label)

	assert.Equal(t, 3, enriched[2].Rank)
	assert.Equal(t, "Low", enriched[2].Label)
}

func TestEnrichOpportunitiesEmpty(t *testing.T) {
	assert.Empty(t, schema.EnrichOpportunities(nil))
}
