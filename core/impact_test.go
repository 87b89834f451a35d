package core

import (
	"math"
	"testing"

	"github.com/beaconlabs/beacon/schema"
	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 {
	return &f
}

// TestComputeImpact tests savings derivation across outcome shapes.
func TestComputeImpact(t *testing.T) {
	tests := []struct {
		name   string
		result *schema.AuditResult
		want   float64
	}{
		{
			name:   "nil result",
			result: nil,
			want:   0,
		},
		{
			name:   "plain numeric value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode, NumericValue: fptr(1130)},
			want:   1130,
		},
		{
			name:   "error message wins over value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode, NumericValue: fptr(1130), ErrorMessage: "boom"},
			want:   0,
		},
		{
			name:   "error mode wins over value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.ErrorMode, NumericValue: fptr(1130)},
			want:   0,
		},
		{
			name:   "missing numeric value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode},
			want:   0,
		},
		{
			name:   "nan numeric value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode, NumericValue: fptr(math.NaN())},
			want:   0,
		},
		{
			name:   "infinite numeric value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode, NumericValue: fptr(math.Inf(1))},
			want:   0,
		},
		{
			name:   "negative numeric value",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode, NumericValue: fptr(-300)},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeImpact(tt.result)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

// TestShowsAsPassed tests the pass predicate used for clump placement.
func TestShowsAsPassed(t *testing.T) {
	tests := []struct {
		name   string
		result *schema.AuditResult
		want   bool
	}{
		{
			name:   "nil result fails",
			result: nil,
			want:   false,
		},
		{
			name:   "full score passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.BinaryMode, Score: fptr(1)},
			want:   true,
		},
		{
			name:   "partial score fails",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode, Score: fptr(0.95)},
			want:   false,
		},
		{
			name:   "nil score fails",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NumericMode},
			want:   false,
		},
		{
			name:   "not applicable passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.NotApplicableMode},
			want:   true,
		},
		{
			name:   "manual passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.ManualMode},
			want:   true,
		},
		{
			name:   "error mode never passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.ErrorMode, Score: fptr(1)},
			want:   false,
		},
		{
			name:   "error message never passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.BinaryMode, Score: fptr(1), ErrorMessage: "boom"},
			want:   false,
		},
		{
			name:   "informative with no signal passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.InformativeMode},
			want:   true,
		},
		{
			name:   "informative with measured value fails",
			result: &schema.AuditResult{ScoreDisplayMode: schema.InformativeMode, NumericValue: fptr(420)},
			want:   false,
		},
		{
			name:   "informative with detail rows fails",
			result: &schema.AuditResult{
				ScoreDisplayMode: schema.InformativeMode,
				Details:          &schema.Details{Items: []schema.DetailItem{{"url": "a.js"}}},
			},
			want: false,
		},
		{
			name:   "informative with empty details passes",
			result: &schema.AuditResult{ScoreDisplayMode: schema.InformativeMode, Details: &schema.Details{}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowsAsPassed(tt.result))
		})
	}
}
