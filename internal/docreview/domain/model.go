package domain

// Role classifies a clause's rhetorical function in a legal document.
type Role string

const (
	RoleFacts   Role = "FACTS"
	RoleIssue   Role = "ISSUE"
	RoleArg     Role = "ARG"
	RoleReason  Role = "REASON"
	RoleHolding Role = "HOLDING"
	RoleOrder   Role = "ORDER"
	RoleOther   Role = "OTHER"
)

// Roles lists the closed set of clause roles in display order.
var Roles = []Role{RoleFacts, RoleIssue, RoleArg, RoleReason, RoleHolding, RoleOrder, RoleOther}

// ValidRole reports whether r is one of the closed Role set.
func ValidRole(r Role) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Document identifies an uploaded document. Immutable after upload.
type Document struct {
	DocID string `json:"doc_id"`
	Title string `json:"title"`
	Chars int    `json:"chars"`
}

// Clause is a single discourse unit of a document. Immutable once created.
type Clause struct {
	ID   int    `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ScoredClause is a view projection of a Clause carrying derived scores.
// Risk and Score are recomputed on every read, never persisted.
type ScoredClause struct {
	Clause
	Risk  float64 `json:"risk,omitempty"`
	Score float64 `json:"score,omitempty"`
}

// SummaryKind tags the two mutually exclusive summary shapes.
type SummaryKind string

const (
	SummaryParagraph SummaryKind = "paragraph"
	SummaryBullets   SummaryKind = "bullets"
)

// SummaryBullet is one bullet of a bullet-form summary.
type SummaryBullet struct {
	Text        string `json:"text"`
	Topic       string `json:"topic,omitempty"`
	SourceIndex *int   `json:"source_index,omitempty"`
}

// Summary is the tagged union produced by one summarize call: exactly one of
// Text (paragraph) or Items (bullets) is populated, decided by Kind.
type Summary struct {
	Kind  SummaryKind     `json:"kind"`
	Text  string          `json:"text,omitempty"`
	Items []SummaryBullet `json:"items,omitempty"`
}

// Citation references a clause that justified an answer.
type Citation struct {
	ClauseID int     `json:"clause_id"`
	Role     Role    `json:"role"`
	Score    float64 `json:"score"`
}

// Answer is the result of ask / ragAnswer.
type Answer struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}
