package outwriter

import (
	"math"
	"strings"
)

// DefaultSparklineWidth is the bar width used in table output.
const DefaultSparklineWidth = 10

// Sparkline renders a fraction in [0,1] as a fixed-width bar. Out-of-range
// values are clamped so malformed fractions never distort the table layout.
func Sparkline(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(fraction * float64(width)))
	// A non-zero fraction always shows at least one filled cell so tiny
	// opportunities remain visible next to the dominant one.
	if filled == 0 && fraction > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
