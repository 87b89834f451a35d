package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beaconlabs/beacon/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBudgetSection() *schema.BudgetSection {
	return &schema.BudgetSection{
		Tables: []schema.BudgetTable{
			{
				AuditID: schema.PerformanceBudgetAuditID,
				Title:   "Performance budget",
				Headings: []schema.DetailHeading{
					{Key: "label", Label: "Resource Type", ValueType: schema.ValueTypeText},
					{Key: "size", Label: "Size", ValueType: schema.ValueTypeBytes},
					{Key: "sizeOverBudget", Label: "Over Budget", ValueType: schema.ValueTypeBytes},
				},
				Rows: []schema.DetailItem{
					{"label": "Script", "size": float64(204800), "sizeOverBudget": float64(51200)},
					{"label": "Image", "size": float64(102400)},
				},
			},
			{
				AuditID: schema.TimingBudgetAuditID,
				Title:   "Timing budget",
				Headings: []schema.DetailHeading{
					{Key: "label", Label: "Metric", ValueType: schema.ValueTypeText},
					{Key: "measurement", Label: "Measurement", ValueType: schema.ValueTypeMs},
					{Key: "overBudget", Label: "Over Budget", ValueType: schema.ValueTypeMs},
				},
				Rows: []schema.DetailItem{
					{"label": "Time to Interactive", "measurement": float64(5300), "overBudget": float64(1300)},
				},
			},
		},
	}
}

func TestWriteBudgetsText(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()

	err := writeBudgetsText(&buf, sampleBudgetSection(), cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Performance budget")
	assert.Contains(t, out, "Resource Type")
	assert.Contains(t, out, "200.0 KiB")
	assert.Contains(t, out, "50.0 KiB")
	assert.Contains(t, out, "Timing budget")
	assert.Contains(t, out, "5300 ms")
	assert.Contains(t, out, "1300 ms")
}

func TestWriteBudgetsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := writeBudgetsText(&buf, &schema.BudgetSection{}, testConfig())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No budget tables in this report.")
}

func TestWriteCSVBudgets(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVBudgets(&buf, sampleBudgetSection(), testConfig())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header + 3 columns x 2 rows + 3 columns x 1 row
	require.Len(t, lines, 10)
	assert.Equal(t, "audit_id,column,row,value", lines[0])
	assert.Equal(t, "performance-budget,label,1,Script", lines[1])
	assert.Equal(t, "performance-budget,size,1,200.0 KiB", lines[2])
	// Missing cell renders empty
	assert.Equal(t, "performance-budget,sizeOverBudget,2,", lines[6])
	assert.Equal(t, "timing-budget,measurement,1,5300 ms", lines[8])
}

func TestFormatBudgetCell(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	tests := []struct {
		name      string
		value     any
		valueType string
		expected  string
	}{
		{
			name:      "bytes",
			value:     float64(10240),
			valueType: schema.ValueTypeBytes,
			expected:  "10.0 KiB",
		},
		{
			name:      "milliseconds",
			value:     float64(453),
			valueType: schema.ValueTypeMs,
			expected:  "450 ms",
		},
		{
			name:      "timespan milliseconds",
			value:     float64(12000),
			valueType: schema.ValueTypeTimespanMs,
			expected:  "12.0 s",
		},
		{
			name:      "numeric",
			value:     float64(3.456),
			valueType: schema.ValueTypeNumeric,
			expected:  "3.5",
		},
		{
			name:      "text",
			value:     "Script",
			valueType: schema.ValueTypeText,
			expected:  "Script",
		},
		{
			name:      "url",
			value:     "https://example.com/app.js",
			valueType: schema.ValueTypeURL,
			expected:  "https://example.com/app.js",
		},
		{
			name:      "nil value",
			value:     nil,
			valueType: schema.ValueTypeBytes,
			expected:  "",
		},
		{
			name:      "numeric type with string payload",
			value:     "n/a",
			valueType: schema.ValueTypeNumeric,
			expected:  "n/a",
		},
		{
			name:      "unknown type with number",
			value:     float64(7),
			valueType: "",
			expected:  "7",
		},
		{
			name:      "int payload",
			value:     1024,
			valueType: schema.ValueTypeBytes,
			expected:  "1.0 KiB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBudgetCell(tt.value, tt.valueType, fmtFloat))
		})
	}
}
