package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/beaconlabs/beacon/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOpportunities() []schema.RenderedOpportunity {
	return []schema.RenderedOpportunity{
		{
			RenderedAudit: schema.RenderedAudit{
				AuditID: "render-blocking-resources", Title: "Eliminate render-blocking resources",
				DisplayValue: "Potential savings of 1,200 ms", Rating: schema.FailRating,
			},
			ImpactMs: 1200, SparklineFraction: 1,
		},
		{
			RenderedAudit: schema.RenderedAudit{
				AuditID: "unused-css-rules", Title: "Reduce unused CSS",
				DisplayValue: "Potential savings of 300 ms", Rating: schema.FailRating,
			},
			ImpactMs: 300, SparklineFraction: 0.25,
		},
		{
			RenderedAudit: schema.RenderedAudit{
				AuditID: "uses-optimized-images", Title: "Efficiently encode images",
				DisplayValue: "Error!", Rating: schema.ErrorRating, Errored: true,
			},
		},
	}
}

func TestWriteOpportunityTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()

	err := writeOpportunityTable(sampleOpportunities(), cfg, 3*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Eliminate render-blocking resources")
	assert.Contains(t, out, "1200 ms")
	assert.Contains(t, out, "██████████")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "Error!")
	assert.Contains(t, out, "Showing 3 opportunities (total estimated savings: 1500 ms)")
	assert.Contains(t, out, "Render completed in")
}

func TestWriteCSVOpportunities(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)

	csvWriter := csv.NewWriter(&buf)
	require.NoError(t, writeCSVOpportunities(csvWriter, sampleOpportunities(), fmtFloat))
	csvWriter.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 rows
	assert.Equal(t, "rank,audit_id,title,impact_ms,sparkline_fraction,label,display_value,tooltip,explanation", lines[0])
	assert.Contains(t, lines[1], "1,render-blocking-resources")
	assert.Contains(t, lines[1], "1200.0")
	assert.Contains(t, lines[1], "High")
	assert.Contains(t, lines[2], "2,unused-css-rules")
	assert.Contains(t, lines[2], "Low")
}

func TestWriteJSONOpportunities(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONOpportunities(&buf, sampleOpportunities()))

	var decoded []schema.EnrichedOpportunity
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, 1, decoded[0].Rank)
	assert.Equal(t, "High", decoded[0].Label)
	assert.Equal(t, 3, decoded[2].Rank)
}

func TestOpportunityLabel(t *testing.T) {
	cfg := testConfig()

	opp := sampleOpportunities()[0]
	assert.Equal(t, "High", opportunityLabel(opp, cfg))

	errored := sampleOpportunities()[2]
	assert.Equal(t, string(schema.ErrorRating), opportunityLabel(errored, cfg))
}
