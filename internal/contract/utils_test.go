package contract

import (
	"strings"
	"testing"

	"github.com/beaconlabs/beacon/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name     string
		impactMs float64
		expected string
	}{
		{"low", 0, "Low"},
		{"moderate", 300, "Moderate"},
		{"high", 1200, "High"},
		{"critical", 2400, "Critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Color codes may or may not appear depending on the terminal;
			// the label text must always be present.
			assert.Contains(t, GetColorLabel(tt.impactMs), tt.expected)
		})
	}
}

func TestGetColorRating(t *testing.T) {
	for _, rating := range []schema.Rating{
		schema.PassRating, schema.AverageRating, schema.FailRating,
		schema.ErrorRating, schema.InformativeRating,
	} {
		assert.Contains(t, GetColorRating(rating), string(rating))
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "short path unchanged",
			path:     "audits/fcp.json",
			maxWidth: 40,
			expected: "audits/fcp.json",
		},
		{
			name:     "long path truncated with ellipsis",
			path:     "reports/2026/08/24/example.com/performance.json",
			maxWidth: 20,
			expected: ".../performance.json",
		},
		{
			name:     "tiny width leaves path alone",
			path:     "abcdef",
			maxWidth: 3,
			expected: "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePath(tt.path, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 3 {
				assert.LessOrEqual(t, len([]rune(got)), tt.maxWidth)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got)
	}
	_, err := ParseBoolString("maybe")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid boolean"))
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".beacon_history.db"))
}
