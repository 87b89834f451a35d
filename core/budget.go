package core

import "github.com/beaconlabs/beacon/schema"

// BuildBudgetTables assembles the budget comparison tables from the two
// dedicated budget audits. When neither audit is applicable the whole
// section is absent, signaled by a nil return rather than an empty one.
func BuildBudgetTables(perfBudget, timingBudget *schema.AuditRef) *schema.BudgetSection {
	tables := make([]schema.BudgetTable, 0, 2)
	for _, ref := range []*schema.AuditRef{perfBudget, timingBudget} {
		if table, ok := budgetTable(ref); ok {
			tables = append(tables, table)
		}
	}
	if len(tables) == 0 {
		return nil
	}
	return &schema.BudgetSection{Tables: tables}
}

// budgetTable projects one budget audit's detail items into a table, one row
// per item in their original order. Inapplicable or detail-less audits
// produce no table at all.
func budgetTable(ref *schema.AuditRef) (schema.BudgetTable, bool) {
	if ref == nil || ref.Result == nil {
		return schema.BudgetTable{}, false
	}
	result := ref.Result
	if result.ScoreDisplayMode == schema.NotApplicableMode || result.Details == nil {
		return schema.BudgetTable{}, false
	}

	headings := make([]schema.DetailHeading, len(result.Details.Headings))
	copy(headings, result.Details.Headings)
	rows := make([]schema.DetailItem, len(result.Details.Items))
	copy(rows, result.Details.Items)

	return schema.BudgetTable{
		AuditID:  ref.ID,
		Title:    result.Title,
		Headings: headings,
		Rows:     rows,
	}, true
}
