package core

import (
	"fmt"

	"github.com/beaconlabs/beacon/schema"
)

// ErrorLabel replaces the display value of audits whose result errored or is
// missing.
const ErrorLabel = "Error!"

// missingResultTooltip marks references whose result was never joined in.
const missingResultTooltip = "audit result missing"

// AuditRenderer formats one audit reference into its generic display form.
// The composer delegates every diagnostics, passed and not-applicable member
// to it.
type AuditRenderer interface {
	RenderAudit(ref *schema.AuditRef) schema.RenderedAudit
}

// StandardAuditRenderer is the default AuditRenderer.
type StandardAuditRenderer struct{}

// RenderAudit implements AuditRenderer.
func (StandardAuditRenderer) RenderAudit(ref *schema.AuditRef) schema.RenderedAudit {
	return renderAudit(ref)
}

// renderAudit maps one reference to its display form. A missing or errored
// result degrades only this item: the marker replaces the value and the
// tooltip carries the message, while siblings render normally.
func renderAudit(ref *schema.AuditRef) schema.RenderedAudit {
	result := ref.Result
	if result == nil {
		return schema.RenderedAudit{
			AuditID:      ref.ID,
			Title:        ref.ID,
			DisplayValue: ErrorLabel,
			Rating:       schema.ErrorRating,
			Tooltip:      missingResultTooltip,
			Errored:      true,
		}
	}
	view := schema.RenderedAudit{
		AuditID:      ref.ID,
		Title:        result.Title,
		Description:  result.Description,
		DisplayValue: result.DisplayValue,
		Rating:       schema.RatingForResult(result),
		Explanation:  result.Explanation,
	}
	if result.ErrorMessage != "" || result.ScoreDisplayMode == schema.ErrorMode {
		view.Errored = true
		view.DisplayValue = ErrorLabel
		view.Tooltip = result.ErrorMessage
	}
	return view
}

// FormatMetrics maps metric references to their display form in input order.
// Metrics keep their place in the section regardless of outcome, so errored
// entries render the marker rather than disappearing.
func FormatMetrics(refs []schema.AuditRef) []schema.RenderedMetric {
	metrics := make([]schema.RenderedMetric, 0, len(refs))
	for i := range refs {
		metrics = append(metrics, formatMetric(&refs[i]))
	}
	return metrics
}

func formatMetric(ref *schema.AuditRef) schema.RenderedMetric {
	result := ref.Result
	if result == nil {
		return schema.RenderedMetric{
			AuditID:      ref.ID,
			Title:        ref.ID,
			DisplayValue: ErrorLabel,
			Rating:       schema.ErrorRating,
			Tooltip:      missingResultTooltip,
		}
	}
	metric := schema.RenderedMetric{
		AuditID:      ref.ID,
		Title:        result.Title,
		Score:        result.Score,
		Rating:       schema.RatingForResult(result),
		DisplayValue: result.DisplayValue,
	}
	if metric.DisplayValue == "" && result.NumericValue != nil {
		metric.DisplayValue = formatMetricValue(*result.NumericValue, result.NumericUnit)
	}
	if result.ErrorMessage != "" || result.ScoreDisplayMode == schema.ErrorMode {
		metric.DisplayValue = ErrorLabel
		metric.Tooltip = result.ErrorMessage
	}
	return metric
}

// formatMetricValue renders a raw measured value when the producer supplied
// no display text. Milliseconds are the dominant unit; anything else is
// printed with its unit name.
func formatMetricValue(value float64, unit string) string {
	switch unit {
	case "", "millisecond":
		return schema.FormatMs(value)
	case "unitless":
		return fmt.Sprintf("%.2g", value)
	default:
		return fmt.Sprintf("%g %s", value, unit)
	}
}
