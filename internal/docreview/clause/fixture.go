package clause

import "github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"

// FixtureDocID is the document id of the built-in demo corpus used when no
// engine-indexed document is available.
const FixtureDocID = "doc-001"

const fixtureTitle = "Service Agreement — Acme vs. Beta"

var fixtureClauses = []domain.Clause{
	{ID: 1, Role: domain.RoleFacts, Text: "Parties executed a service agreement on 02 Jan 2024 with a 12-month term."},
	{ID: 2, Role: domain.RoleIssue, Text: "Whether early termination without cause is permissible under clause 9."},
	{ID: 3, Role: domain.RoleArg, Text: "Plaintiff argues notice must be 60 days as per industry standard."},
	{ID: 4, Role: domain.RoleReason, Text: "The Court considered contra proferentem and course of dealing."},
	{ID: 5, Role: domain.RoleHolding, Text: "Termination clause requires 30 days written notice."},
	{ID: 6, Role: domain.RoleOrder, Text: "Damages limited to fees paid in the last billing cycle."},
	{ID: 7, Role: domain.RoleOther, Text: "Vendor may terminate at its sole discretion without liability."},
}

// RoleSummaries returns the canned role-wise summaries for the fixture
// document, shown on the dashboard landing page.
func RoleSummaries() map[domain.Role][]string {
	return map[domain.Role][]string{
		domain.RoleFacts:   {"The agreement was signed on 02 Jan 2024 for 12 months."},
		domain.RoleIssue:   {"Is early termination without cause permitted?"},
		domain.RoleReason:  {"Court applied contra proferentem and course of dealing."},
		domain.RoleHolding: {"30 days written notice is required for termination."},
	}
}
