package outwriter

import (
	"os"

	"github.com/beaconlabs/beacon/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableTitleWidth calculates the maximum width for audit titles in
// table output based on terminal width and table configuration.
func GetMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns: rank, savings, sparkline, label,
	// plus table borders, separators, and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable title width
		return 15
	}
	if available > 70 {
		// Maximum title width to prevent overly long rows
		return 70
	}
	return available
}
