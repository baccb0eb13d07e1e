// Package clause holds the in-memory clause collections the local read paths
// (listing, search, risk views) are served from: the built-in fixture corpus
// plus any clause sets returned by the engine's index step.
package clause

import (
	"sync"
	"time"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/risk"
)

type entry struct {
	doc        domain.Document
	clauses    []domain.Clause
	lastAccess time.Time
}

// Store keeps clause sets keyed by document id. Reads fall back to the
// fixture corpus when the requested document is unknown. Risk scores are
// recomputed on every read; nothing derived is cached.
type Store struct {
	mu   sync.Mutex
	docs map[string]*entry
	now  func() time.Time
}

// NewStore creates a Store pre-seeded with the fixture document.
func NewStore() *Store {
	s := &Store{
		docs: make(map[string]*entry),
		now:  time.Now,
	}
	s.docs[FixtureDocID] = &entry{
		doc: domain.Document{
			DocID: FixtureDocID,
			Title: fixtureTitle,
			Chars: totalChars(fixtureClauses),
		},
		clauses:    fixtureClauses,
		lastAccess: s.now(),
	}
	return s
}

// Put registers the clause set for a document, replacing any prior set.
func (s *Store) Put(doc domain.Document, clauses []domain.Clause) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.DocID] = &entry{
		doc:        doc,
		clauses:    clauses,
		lastAccess: s.now(),
	}
}

// SetClauses replaces the document's clause set, keeping existing metadata.
// An entry is created when the document was never registered, deriving the
// character count from the clause texts.
func (s *Store) SetClauses(docID string, clauses []domain.Clause) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.docs[docID]; ok {
		e.clauses = clauses
		e.lastAccess = s.now()
		return
	}
	s.docs[docID] = &entry{
		doc:        domain.Document{DocID: docID, Title: docID, Chars: totalChars(clauses)},
		clauses:    clauses,
		lastAccess: s.now(),
	}
}

// Has reports whether a clause set is registered for the document.
func (s *Store) Has(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[docID]
	return ok
}

// Clauses returns the raw clause set for the document in insertion order.
// Empty or unknown ids resolve to the fixture corpus.
func (s *Store) Clauses(docID string) []domain.Clause {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.resolve(docID)
	e.lastAccess = s.now()
	out := make([]domain.Clause, len(e.clauses))
	copy(out, e.clauses)
	return out
}

// ListClauses returns the document's clauses annotated with a risk score,
// optionally filtered by exact role match. Role "" returns all clauses.
func (s *Store) ListClauses(docID string, role domain.Role) []domain.ScoredClause {
	rows := s.Clauses(docID)
	out := make([]domain.ScoredClause, 0, len(rows))
	for _, c := range rows {
		if role != "" && c.Role != role {
			continue
		}
		out = append(out, domain.ScoredClause{Clause: c, Risk: risk.Score(c.Text)})
	}
	return out
}

// GetDocumentMeta returns the document's metadata, falling back to the
// fixture document for empty or unknown ids.
func (s *Store) GetDocumentMeta(docID string) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.resolve(docID)
	e.lastAccess = s.now()
	return e.doc
}

// EvictIdle removes documents not read or written for longer than ttl.
// The fixture document is never evicted. Returns the number evicted.
func (s *Store) EvictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	evicted := 0
	for id, e := range s.docs {
		if id == FixtureDocID {
			continue
		}
		if e.lastAccess.Before(cutoff) {
			delete(s.docs, id)
			evicted++
		}
	}
	return evicted
}

// resolve must be called with the lock held.
func (s *Store) resolve(docID string) *entry {
	if e, ok := s.docs[docID]; ok && docID != "" {
		return e
	}
	return s.docs[FixtureDocID]
}

func totalChars(clauses []domain.Clause) int {
	n := 0
	for _, c := range clauses {
		n += len(c.Text)
	}
	return n
}
