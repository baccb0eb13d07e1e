// Package facade exposes the document-intelligence operations every dashboard
// page depends on behind one normalized interface. Two implementations exist:
// RemoteFacade wraps the summarization/RAG engine over HTTP, and
// LocalFixtureFacade serves everything from the in-memory fixture corpus when
// no engine is configured. Callers pick one at construction time and never
// branch on which is active.
package facade

import (
	"context"
	"io"
	"math"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
)

// DefaultAskK bounds citations when the caller does not pass k.
const DefaultAskK = 5

const noRelevantClause = "No relevant clause found. Try rephrasing."

// Facade is the single integration point for document-intelligence operations.
type Facade interface {
	// Upload registers a document and returns its identity. The returned
	// doc_id becomes the caller's active document context.
	Upload(ctx context.Context, filename string, r io.Reader) (*domain.Document, error)

	// Summarize produces either a paragraph or a bullet summary, never both.
	// Mode is "extractive" or "abstractive".
	Summarize(ctx context.Context, docID, mode string) (*domain.Summary, error)

	// Index prepares the document's retrieval index. Safe to call repeatedly.
	Index(ctx context.Context, docID string) error

	// Ask answers a question with citations. Requires a non-empty docID and a
	// non-blank question; violations fail with PreconditionError before any
	// network call.
	Ask(ctx context.Context, docID, question string, k int) (*domain.Answer, error)

	// Search ranks the document's clauses against the query. The return shape
	// is identical whichever path (engine or local ranker) served the request.
	Search(ctx context.Context, docID, query string) ([]domain.ScoredClause, error)

	// RAGAnswer composes an answer from the top search hit, citing the top
	// three hits.
	RAGAnswer(ctx context.Context, docID, question string) (*domain.Answer, error)
}

// composeRAGAnswer builds the retrieval-augmented answer from ranked hits.
func composeRAGAnswer(hits []domain.ScoredClause) *domain.Answer {
	if len(hits) == 0 {
		return &domain.Answer{Answer: noRelevantClause, Citations: []domain.Citation{}}
	}
	top := hits
	if len(top) > 3 {
		top = top[:3]
	}
	citations := make([]domain.Citation, 0, len(top))
	for _, h := range top {
		citations = append(citations, domain.Citation{ClauseID: h.ID, Role: h.Role, Score: h.Score})
	}
	return &domain.Answer{
		Answer:    "Likely answer: " + hits[0].Text,
		Citations: citations,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
