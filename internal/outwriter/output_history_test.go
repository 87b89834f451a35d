package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/beaconlabs/beacon/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRuns() []schema.RenderRun {
	return []schema.RenderRun{
		{
			ID:             2,
			URL:            "https://example.com/",
			CategoryID:     "performance",
			CategoryScore:  fptr(0.82),
			FetchTime:      time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			Opportunities:  3,
			Diagnostics:    5,
			Passed:         12,
			TotalSavingsMs: 1500,
			CreatedAt:      time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		{
			ID:         1,
			URL:        "https://example.com/",
			CategoryID: "performance",
			FetchTime:  time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC),
			CreatedAt:  time.Date(2026, 3, 13, 9, 26, 53, 0, time.UTC),
		},
	}
}

func TestWriteHistoryRunTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeHistoryRunTable(&buf, sampleRuns(), testConfig())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "https://example.com/")
	assert.Contains(t, out, "performance")
	assert.Contains(t, out, "82")
	assert.Contains(t, out, "1500 ms")
	// Absent score shows as a dash
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "Showing 2 runs")
}

func TestWriteHistoryRunTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := writeHistoryRunTable(&buf, nil, testConfig())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No render runs recorded yet.")
}

func TestWriteCSVHistoryRuns(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)

	err := writeCSVHistoryRuns(&buf, sampleRuns(), fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,url,category_id,category_score,fetch_time,opportunities,diagnostics,passed,total_savings_ms,created_at", lines[0])
	assert.Contains(t, lines[1], "2,https://example.com/,performance,0.8,")
	assert.Contains(t, lines[1], "3,5,12,1500.0")
	// Nil score leaves the column empty
	assert.Contains(t, lines[2], "1,https://example.com/,performance,,")
}
