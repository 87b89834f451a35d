package core

import (
	"math"

	"github.com/beaconlabs/beacon/schema"
)

// ComputeImpact derives the estimated savings for one audit outcome. Errored
// and malformed results count as zero so downstream sorting stays total. The
// returned value is always finite and non-negative.
func ComputeImpact(result *schema.AuditResult) float64 {
	if result == nil || result.ErrorMessage != "" || result.ScoreDisplayMode == schema.ErrorMode {
		return 0
	}
	if result.NumericValue == nil {
		return 0
	}
	v := *result.NumericValue
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ShowsAsPassed reports whether an audit outcome reads as passed for clump
// placement. Inapplicable and manual checks pass by definition. Informative
// results pass only when they carry no actionable signal, meaning no finite
// measured value and no detail rows. Scoreable results pass only on a full
// score of 1; anything errored never passes.
func ShowsAsPassed(result *schema.AuditResult) bool {
	if result == nil {
		return false
	}
	if result.ErrorMessage != "" || result.ScoreDisplayMode == schema.ErrorMode {
		return false
	}
	switch result.ScoreDisplayMode {
	case schema.NotApplicableMode, schema.ManualMode:
		return true
	case schema.InformativeMode:
		return !hasActionableSignal(result)
	}
	return result.Score != nil && *result.Score == 1
}

func hasActionableSignal(result *schema.AuditResult) bool {
	if result.NumericValue != nil {
		v := *result.NumericValue
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 {
			return true
		}
	}
	return result.Details != nil && len(result.Details.Items) > 0
}
