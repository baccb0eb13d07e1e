package clause

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
)

func TestNewStore_FixtureSeeded(t *testing.T) {
	s := NewStore()

	doc := s.GetDocumentMeta("")
	assert.Equal(t, FixtureDocID, doc.DocID)
	assert.Equal(t, "Service Agreement — Acme vs. Beta", doc.Title)
	assert.Greater(t, doc.Chars, 0)

	rows := s.ListClauses("", "")
	require.Len(t, rows, 7)
	for i, r := range rows {
		assert.Equal(t, i+1, r.ID, "insertion order is stable")
	}
}

func TestListClauses_RoleFilter(t *testing.T) {
	s := NewStore()

	holding := s.ListClauses(FixtureDocID, domain.RoleHolding)
	require.Len(t, holding, 1)
	assert.Equal(t, "Termination clause requires 30 days written notice.", holding[0].Text)

	assert.Empty(t, s.ListClauses(FixtureDocID, domain.Role("NOPE")))
}

func TestListClauses_RiskAnnotated(t *testing.T) {
	s := NewStore()

	rows := s.ListClauses(FixtureDocID, domain.RoleOther)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.57, rows[0].Risk, "sole discretion + without liability clause")

	for _, r := range s.ListClauses(FixtureDocID, "") {
		assert.GreaterOrEqual(t, r.Risk, 0.0)
		assert.LessOrEqual(t, r.Risk, 1.0)
	}
}

func TestPut_RegistersDocument(t *testing.T) {
	s := NewStore()
	doc := domain.Document{DocID: "abc12345", Title: "lease.txt", Chars: 42}
	clauses := []domain.Clause{{ID: 1, Role: domain.RoleOther, Text: "Tenant shall pay rent monthly."}}

	s.Put(doc, clauses)

	assert.True(t, s.Has("abc12345"))
	assert.Equal(t, doc, s.GetDocumentMeta("abc12345"))
	require.Len(t, s.Clauses("abc12345"), 1)
}

func TestUnknownDocFallsBackToFixture(t *testing.T) {
	s := NewStore()
	assert.Equal(t, FixtureDocID, s.GetDocumentMeta("never-registered").DocID)
	assert.Len(t, s.Clauses("never-registered"), 7)
}

func TestSetClauses_KeepsMeta(t *testing.T) {
	s := NewStore()
	doc := domain.Document{DocID: "d1", Title: "contract.pdf", Chars: 100}
	s.Put(doc, nil)

	s.SetClauses("d1", []domain.Clause{{ID: 1, Role: domain.RoleFacts, Text: "Signed in 2024."}})

	assert.Equal(t, "contract.pdf", s.GetDocumentMeta("d1").Title)
	assert.Len(t, s.Clauses("d1"), 1)
}

func TestSetClauses_CreatesEntryForUnknownDoc(t *testing.T) {
	s := NewStore()
	s.SetClauses("d2", []domain.Clause{{ID: 1, Role: domain.RoleOther, Text: "Some clause."}})

	assert.True(t, s.Has("d2"))
	assert.Equal(t, len("Some clause."), s.GetDocumentMeta("d2").Chars)
}

func TestEvictIdle(t *testing.T) {
	s := NewStore()
	s.Put(domain.Document{DocID: "stale"}, nil)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, s.EvictIdle(time.Millisecond))
	assert.False(t, s.Has("stale"))
	assert.True(t, s.Has(FixtureDocID), "fixture doc is never evicted")

	s.Put(domain.Document{DocID: "fresh"}, nil)
	assert.Equal(t, 0, s.EvictIdle(time.Hour))
	assert.True(t, s.Has("fresh"))
}
