package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beaconlabs/beacon/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // criticalColor represents standard danger.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor represents strong, distinct warning.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents standard caution, not bold.
	LowColor      = color.New(color.FgCyan)                // lowColor represents informational / low-priority signal.

	passColor    = color.New(color.FgGreen)
	averageColor = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed, color.Bold)
	errorColor   = color.New(color.FgMagenta, color.Bold)
	neutralColor = color.New(color.FgCyan)
)

// GetColorLabel returns a colored impact label for console output (table).
// It uses schema.GetImpactLabel to determine the string, and then applies
// the appropriate color.
func GetColorLabel(impactMs float64) string {
	text := schema.GetImpactLabel(impactMs)

	switch text {
	case "Critical":
		return CriticalColor.Sprint(text)
	case "High":
		return HighColor.Sprint(text)
	case "Moderate":
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// GetColorRating returns a colored rating label for console output.
func GetColorRating(rating schema.Rating) string {
	switch rating {
	case schema.PassRating:
		return passColor.Sprint(rating)
	case schema.AverageRating:
		return averageColor.Sprint(rating)
	case schema.FailRating:
		return failColor.Sprint(rating)
	case schema.ErrorRating:
		return errorColor.Sprint(rating)
	default: // informative, notApplicable, manual
		return neutralColor.Sprint(rating)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".beacon_history.db"
	}
	return filepath.Join(homeDir, ".beacon_history.db")
}

// TruncatePath truncates a display string to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
// Without this check, small maxWidth values could cause slice bounds errors in the truncation calculation.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
