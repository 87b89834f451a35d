package schema

import (
	"fmt"
	"math"
)

// FormatMs renders a millisecond quantity for display. Values are rounded to
// the nearest 10 ms below ten seconds, matching how report producers quote
// savings estimates, and switch to seconds above that.
func FormatMs(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		ms = 0
	}
	if ms >= 10000 {
		return fmt.Sprintf("%.1f s", ms/1000)
	}
	return fmt.Sprintf("%.0f ms", math.Round(ms/10)*10)
}

// FormatSavings renders the standard estimated-savings phrase for an
// opportunity's display value.
func FormatSavings(ms float64) string {
	return fmt.Sprintf("Potential savings of %s", FormatMs(ms))
}

// FormatBytes renders a byte quantity in KiB, the unit budget tables use.
func FormatBytes(b float64) string {
	if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
		b = 0
	}
	return fmt.Sprintf("%.1f KiB", b/1024)
}

// FormatScore renders a unit-interval score as its conventional 0-100 form,
// or a dash when the score is absent.
func FormatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", math.Round(*score*100))
}
