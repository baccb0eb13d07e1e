package facade

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/rank"
)

// LocalFixtureFacade serves every operation from the in-memory clause store.
// Selected when no engine URL is configured: uploads are parsed locally into
// sentence clauses, summaries use the keyword-weighted extractive heuristic,
// and search/ask run the token-overlap ranker.
type LocalFixtureFacade struct {
	store *clause.Store
}

func NewLocalFixtureFacade(store *clause.Store) *LocalFixtureFacade {
	return &LocalFixtureFacade{store: store}
}

func (f *LocalFixtureFacade) Upload(ctx context.Context, filename string, r io.Reader) (*domain.Document, error) {
	if filename == "" || r == nil {
		return nil, &domain.PreconditionError{Field: "file"}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	text := string(data)
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		text = stripHTML(text)
	}
	text = cleanText(text)

	sentences := splitSentences(text)
	clauses := make([]domain.Clause, len(sentences))
	for i, s := range sentences {
		clauses[i] = domain.Clause{ID: i + 1, Role: domain.RoleOther, Text: s}
	}

	doc := domain.Document{
		DocID: uuid.NewString()[:8],
		Title: filename,
		Chars: len(text),
	}
	f.store.Put(doc, clauses)
	return &doc, nil
}

func (f *LocalFixtureFacade) Summarize(ctx context.Context, docID, mode string) (*domain.Summary, error) {
	if docID == "" {
		return nil, &domain.PreconditionError{Field: "doc_id"}
	}
	if !f.store.Has(docID) {
		return nil, domain.ErrDocNotFound
	}

	var parts []string
	for _, c := range f.store.Clauses(docID) {
		parts = append(parts, c.Text)
	}
	text := strings.Join(parts, " ")

	if mode == "abstractive" {
		top := extractiveSummary(text, 3)
		return &domain.Summary{
			Kind: domain.SummaryParagraph,
			Text: strings.TrimSpace(strings.Join(top, " ")),
		}, nil
	}

	items := make([]domain.SummaryBullet, 0, 5)
	for _, s := range extractiveSummary(text, 5) {
		items = append(items, domain.SummaryBullet{Text: s})
	}
	return &domain.Summary{Kind: domain.SummaryBullets, Items: items}, nil
}

func (f *LocalFixtureFacade) Index(ctx context.Context, docID string) error {
	if docID == "" {
		return &domain.PreconditionError{Field: "doc_id"}
	}
	if !f.store.Has(docID) {
		return domain.ErrDocNotFound
	}
	// Clauses are registered at upload time; indexing is a no-op locally.
	return nil
}

func (f *LocalFixtureFacade) Ask(ctx context.Context, docID, question string, k int) (*domain.Answer, error) {
	if docID == "" {
		return nil, &domain.PreconditionError{Field: "doc_id"}
	}
	if strings.TrimSpace(question) == "" {
		return nil, &domain.PreconditionError{Field: "question"}
	}
	ans, err := f.RAGAnswer(ctx, docID, question)
	if err != nil {
		return nil, err
	}
	if k > 0 && len(ans.Citations) > k {
		ans.Citations = ans.Citations[:k]
	}
	return ans, nil
}

func (f *LocalFixtureFacade) Search(ctx context.Context, docID, query string) ([]domain.ScoredClause, error) {
	return rank.Rank(query, f.store.Clauses(docID)), nil
}

func (f *LocalFixtureFacade) RAGAnswer(ctx context.Context, docID, question string) (*domain.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, &domain.PreconditionError{Field: "question"}
	}
	hits, err := f.Search(ctx, docID, question)
	if err != nil {
		return nil, err
	}
	return composeRAGAnswer(hits), nil
}
