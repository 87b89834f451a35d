package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func testConfig() *contract.Config {
	return &contract.Config{
		Precision: 1,
		Output:    schema.TextOut,
		Width:     120,
	}
}

func sampleCategorySection() *schema.CategorySection {
	return &schema.CategorySection{
		CategoryID: "performance",
		Title:      "Performance",
		Score:      fptr(0.82),
		URL:        "https://example.com/",
		FetchTime:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Sections: []schema.Section{
			{
				Clump: schema.MetricsClump,
				Title: "Metrics",
				Metrics: []schema.RenderedMetric{
					{AuditID: "first-contentful-paint", Title: "First Contentful Paint", DisplayValue: "1.2 s", Score: fptr(0.95), Rating: schema.PassRating},
					{AuditID: "interactive", Title: "Time to Interactive", DisplayValue: "5.3 s", Score: fptr(0.4), Rating: schema.FailRating},
				},
			},
			{
				Clump: schema.OpportunitiesClump,
				Title: "Opportunities",
				Opportunities: []schema.RenderedOpportunity{
					{
						RenderedAudit: schema.RenderedAudit{
							AuditID: "render-blocking-resources", Title: "Eliminate render-blocking resources",
							DisplayValue: "Potential savings of 450 ms", Rating: schema.FailRating,
						},
						ImpactMs: 450, SparklineFraction: 1,
					},
				},
			},
			{
				Clump: schema.DiagnosticsClump,
				Title: "Diagnostics",
				Audits: []schema.RenderedAudit{
					{AuditID: "mainthread-work-breakdown", Title: "Minimize main-thread work", DisplayValue: "3.2 s", Rating: schema.FailRating},
					{AuditID: "bootup-time", Title: "Reduce JavaScript execution time", DisplayValue: "Error!", Rating: schema.ErrorRating, Tooltip: "Something went wrong", Errored: true},
				},
			},
		},
		Warnings: []string{"group missing from report: custom-group"},
	}
}

func TestWriteCategorySectionText(t *testing.T) {
	var buf bytes.Buffer
	section := sampleCategorySection()
	cfg := testConfig()

	err := writeCategorySectionText(&buf, section, cfg, 5*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Performance (score: 82)")
	assert.Contains(t, out, "URL: https://example.com/")
	assert.Contains(t, out, "group missing from report: custom-group")
	assert.Contains(t, out, "METRICS: Metrics")
	assert.Contains(t, out, "First Contentful Paint")
	assert.Contains(t, out, "OPPORTUNITIES: Opportunities")
	assert.Contains(t, out, "450 ms")
	assert.Contains(t, out, "DIAGNOSTICS: Diagnostics")
	assert.Contains(t, out, "Error! (Something went wrong)")
	assert.Contains(t, out, "Render completed in")
}

func TestWriteCategorySectionTextEmojis(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.UseEmojis = true

	err := writeCategorySectionText(&buf, sampleCategorySection(), cfg, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "📋 Performance")
	assert.Contains(t, out, "📊 METRICS")
	assert.Contains(t, out, "🚀 OPPORTUNITIES")
}

func TestWriteCategorySectionJSON(t *testing.T) {
	var buf bytes.Buffer
	section := sampleCategorySection()

	require.NoError(t, writeJSON(&buf, section))

	var decoded schema.CategorySection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "performance", decoded.CategoryID)
	require.Len(t, decoded.Sections, 3)
	assert.Equal(t, schema.MetricsClump, decoded.Sections[0].Clump)
}

func TestWriteCSVCategorySection(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()

	err := writeCSVCategorySection(&buf, sampleCategorySection(), cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6) // header + 2 metrics + 1 opportunity + 2 diagnostics
	assert.Equal(t, "clump,audit_id,title,display_value,rating,impact_ms", lines[0])
	assert.Contains(t, lines[1], "metrics,first-contentful-paint")
	assert.Contains(t, lines[3], "opportunities,render-blocking-resources")
	assert.Contains(t, lines[3], "450.0")
}

func TestGetDisplayNameForClump(t *testing.T) {
	assert.Equal(t, "📊 METRICS", getDisplayNameForClump(schema.MetricsClump, true))
	assert.Equal(t, "METRICS", getDisplayNameForClump(schema.MetricsClump, false))
	assert.Equal(t, "NOTAPPLICABLE", getDisplayNameForClump(schema.NotApplicableClump, false))
	assert.Equal(t, "➖ NOT APPLICABLE", getDisplayNameForClump(schema.NotApplicableClump, true))
}
