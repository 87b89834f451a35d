package core

import "github.com/beaconlabs/beacon/schema"

// Clumps is the partition of one category's audit references into output
// sections. Every input reference lands in exactly one field. Ungrouped
// holds references with no group at all; they are excluded from rendering
// but never silently dropped.
type Clumps struct {
	Metrics       []schema.AuditRef
	Opportunities []schema.AuditRef
	Diagnostics   []schema.AuditRef
	Passed        []schema.AuditRef
	NotApplicable []schema.AuditRef
	Budgets       []schema.AuditRef
	Ungrouped     []schema.AuditRef
}

// Total returns the number of references across all clumps. It equals the
// input length of ClumpAuditRefs.
func (c *Clumps) Total() int {
	return len(c.Metrics) + len(c.Opportunities) + len(c.Diagnostics) +
		len(c.Passed) + len(c.NotApplicable) + len(c.Budgets) + len(c.Ungrouped)
}

// ungroupedKey is an internal placement target for references without a
// group. It is not a rendered clump.
const ungroupedKey schema.ClumpKey = "ungrouped"

// clumpRules place each audit reference, first match wins. Order matters:
// the budget audits are claimed before any group rule can see them, the
// metrics group keeps its audits regardless of outcome, and ungrouped
// references are set aside before the pass state is consulted. Residual
// grouped failures land in diagnostics so nothing is dropped.
var clumpRules = []struct {
	key   schema.ClumpKey
	match func(ref *schema.AuditRef) bool
}{
	{schema.BudgetsClump, func(ref *schema.AuditRef) bool {
		return schema.IsBudgetAuditID(ref.ID)
	}},
	{schema.MetricsClump, func(ref *schema.AuditRef) bool {
		return ref.Group == schema.GroupMetrics
	}},
	{schema.OpportunitiesClump, func(ref *schema.AuditRef) bool {
		return ref.Group == schema.GroupLoadOpportunities && !ShowsAsPassed(ref.Result)
	}},
	{schema.DiagnosticsClump, func(ref *schema.AuditRef) bool {
		return ref.Group == schema.GroupDiagnostics && !ShowsAsPassed(ref.Result)
	}},
	{ungroupedKey, func(ref *schema.AuditRef) bool {
		return ref.Group == ""
	}},
	{schema.NotApplicableClump, func(ref *schema.AuditRef) bool {
		if ref.Result == nil {
			return false
		}
		mode := ref.Result.ScoreDisplayMode
		return mode == schema.NotApplicableMode || mode == schema.ManualMode
	}},
	{schema.PassedClump, func(ref *schema.AuditRef) bool {
		return ShowsAsPassed(ref.Result)
	}},
	{schema.DiagnosticsClump, func(ref *schema.AuditRef) bool {
		return true
	}},
}

// ClumpAuditRefs partitions audit references into clumps by evaluating the
// rule table once per reference. Input order is preserved within each clump
// and the input slice is never modified.
func ClumpAuditRefs(refs []schema.AuditRef) *Clumps {
	clumps := &Clumps{}
	for i := range refs {
		clumps.place(clumpKeyFor(&refs[i]), refs[i])
	}
	return clumps
}

// clumpKeyFor returns the placement target for one reference. The last rule
// matches everything, so a target always exists.
func clumpKeyFor(ref *schema.AuditRef) schema.ClumpKey {
	for _, rule := range clumpRules {
		if rule.match(ref) {
			return rule.key
		}
	}
	return schema.DiagnosticsClump
}

func (c *Clumps) place(key schema.ClumpKey, ref schema.AuditRef) {
	switch key {
	case schema.MetricsClump:
		c.Metrics = append(c.Metrics, ref)
	case schema.OpportunitiesClump:
		c.Opportunities = append(c.Opportunities, ref)
	case schema.DiagnosticsClump:
		c.Diagnostics = append(c.Diagnostics, ref)
	case schema.PassedClump:
		c.Passed = append(c.Passed, ref)
	case schema.NotApplicableClump:
		c.NotApplicable = append(c.NotApplicable, ref)
	case schema.BudgetsClump:
		c.Budgets = append(c.Budgets, ref)
	default:
		c.Ungrouped = append(c.Ungrouped, ref)
	}
}
