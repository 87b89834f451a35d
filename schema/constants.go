package schema

// Custom string types for type safety.
type (
	// ScoreDisplayMode says how an audit's score should be interpreted.
	ScoreDisplayMode string

	// ClumpKey identifies one output section of a rendered category.
	ClumpKey string

	// Rating is the display label derived from an audit's outcome.
	Rating string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for render history.
	DatabaseBackend string
)

// All score display modes supported.
const (
	BinaryMode        ScoreDisplayMode = "binary"
	NumericMode       ScoreDisplayMode = "numeric"
	ErrorMode         ScoreDisplayMode = "error"
	InformativeMode   ScoreDisplayMode = "informative"
	NotApplicableMode ScoreDisplayMode = "notApplicable"
	ManualMode        ScoreDisplayMode = "manual"
)

// All output clumps, in render order.
const (
	MetricsClump       ClumpKey = "metrics"
	OpportunitiesClump ClumpKey = "opportunities"
	DiagnosticsClump   ClumpKey = "diagnostics"
	PassedClump        ClumpKey = "passed"
	NotApplicableClump ClumpKey = "notApplicable"
	BudgetsClump       ClumpKey = "budgets"
)

// Group ids used by report producers to place audits into clumps.
const (
	GroupMetrics           = "metrics"
	GroupLoadOpportunities = "load-opportunities"
	GroupDiagnostics       = "diagnostics"
	GroupBudgets           = "budgets"
)

// Budget audits are identified by fixed ids and routed only to the budget
// table builder, never to the generic clumps.
const (
	PerformanceBudgetAuditID = "performance-budget"
	TimingBudgetAuditID      = "timing-budget"
)

// All display ratings supported.
const (
	PassRating          Rating = "pass"
	AverageRating       Rating = "average"
	FailRating          Rating = "fail"
	ErrorRating         Rating = "error"
	InformativeRating   Rating = "informative"
	NotApplicableRating Rating = "notApplicable"
	ManualRating        Rating = "manual"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Detail column value types understood by the table writers.
const (
	ValueTypeText       = "text"
	ValueTypeBytes      = "bytes"
	ValueTypeMs         = "ms"
	ValueTypeTimespanMs = "timespanMs"
	ValueTypeNumeric    = "numeric"
	ValueTypeURL        = "url"
)

// Rating thresholds for scoreable audits. These drive display labels only;
// clump placement requires a full score of 1.
const (
	PassScoreThreshold    = 0.9
	AverageScoreThreshold = 0.5
)

// AllScoreDisplayModes returns a list of all supported score display modes.
var AllScoreDisplayModes = []ScoreDisplayMode{
	BinaryMode, NumericMode, ErrorMode, InformativeMode, NotApplicableMode, ManualMode,
}

// AllClumpKeys returns all output clumps in render order.
var AllClumpKeys = []ClumpKey{
	MetricsClump, OpportunitiesClump, DiagnosticsClump, PassedClump, NotApplicableClump, BudgetsClump,
}

// ValidScoreDisplayModes lists all valid score display modes.
var ValidScoreDisplayModes = map[ScoreDisplayMode]struct{}{
	BinaryMode:        {},
	NumericMode:       {},
	ErrorMode:         {},
	InformativeMode:   {},
	NotApplicableMode: {},
	ManualMode:        {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Valid reports whether the mode is one of the known display modes.
func (m ScoreDisplayMode) Valid() bool {
	_, ok := ValidScoreDisplayModes[m]
	return ok
}

// IsBudgetAuditID reports whether the id names one of the two budget audits.
func IsBudgetAuditID(id string) bool {
	return id == PerformanceBudgetAuditID || id == TimingBudgetAuditID
}

// RatingForScore maps a score in [0,1] to its display rating.
func RatingForScore(score float64) Rating {
	switch {
	case score >= PassScoreThreshold:
		return PassRating
	case score >= AverageScoreThreshold:
		return AverageRating
	default:
		return FailRating
	}
}

// RatingForResult derives the display rating for one audit outcome. Modes
// that carry no score map to their own rating so writers can style them
// apart from real failures.
func RatingForResult(result *AuditResult) Rating {
	if result == nil || result.ScoreDisplayMode == ErrorMode || result.ErrorMessage != "" {
		return ErrorRating
	}
	switch result.ScoreDisplayMode {
	case ManualMode:
		return ManualRating
	case NotApplicableMode:
		return NotApplicableRating
	case InformativeMode:
		return InformativeRating
	}
	if result.Score == nil {
		return ErrorRating
	}
	return RatingForScore(*result.Score)
}
