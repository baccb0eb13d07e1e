package facade

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/rank"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/service"
)

// RemoteFacade serves upload/summarize/index/ask through the engine and keeps
// the clause store in sync with whatever clause sets the engine's index step
// returns, so the local read paths (clause listing, risk views, search
// fallback) stay consistent with the engine's view of the document.
type RemoteFacade struct {
	engine *service.EngineClient
	store  *clause.Store
}

func NewRemoteFacade(engine *service.EngineClient, store *clause.Store) *RemoteFacade {
	return &RemoteFacade{engine: engine, store: store}
}

func (f *RemoteFacade) Upload(ctx context.Context, filename string, r io.Reader) (*domain.Document, error) {
	if filename == "" || r == nil {
		return nil, &domain.PreconditionError{Field: "file"}
	}
	doc, err := f.engine.Upload(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	f.store.Put(*doc, nil)
	return doc, nil
}

func (f *RemoteFacade) Summarize(ctx context.Context, docID, mode string) (*domain.Summary, error) {
	if docID == "" {
		return nil, &domain.PreconditionError{Field: "doc_id"}
	}
	if mode == "" {
		mode = "extractive"
	}
	res, err := f.engine.Summarize(ctx, docID, mode)
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, mapEngineError(res.Error)
	}
	return NormalizeSummary(res.Summary)
}

func (f *RemoteFacade) Index(ctx context.Context, docID string) error {
	if docID == "" {
		return &domain.PreconditionError{Field: "doc_id"}
	}
	res, err := f.engine.Index(ctx, docID)
	if err != nil {
		return err
	}
	if res.Error != "" {
		return mapEngineError(res.Error)
	}
	if len(res.Clauses) > 0 {
		f.store.SetClauses(docID, res.Clauses)
	}
	return nil
}

func (f *RemoteFacade) Ask(ctx context.Context, docID, question string, k int) (*domain.Answer, error) {
	if docID == "" {
		return nil, &domain.PreconditionError{Field: "doc_id"}
	}
	if strings.TrimSpace(question) == "" {
		return nil, &domain.PreconditionError{Field: "question"}
	}
	if k <= 0 {
		k = DefaultAskK
	}
	res, err := f.engine.Ask(ctx, docID, question, k)
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, mapEngineError(res.Error)
	}
	return &domain.Answer{
		Answer:    res.Answer,
		Citations: f.normalizeCitations(docID, res.Citations),
	}, nil
}

func (f *RemoteFacade) Search(ctx context.Context, docID, query string) ([]domain.ScoredClause, error) {
	res, err := f.engine.Search(ctx, docID, query)
	if err != nil {
		var serr *domain.ServerError
		if errors.As(err, &serr) && (serr.Status == http.StatusNotFound || serr.Status == http.StatusMethodNotAllowed) {
			// Engine has no semantic-search endpoint; rank locally over the
			// clauses its index step handed us.
			return rank.Rank(query, f.store.Clauses(docID)), nil
		}
		return nil, err
	}
	if res.Error != "" {
		return nil, mapEngineError(res.Error)
	}
	out := make([]domain.ScoredClause, 0, len(res.Results))
	for _, row := range res.Results {
		c := domain.ScoredClause{
			Clause: domain.Clause{
				ID:   citationID(row),
				Role: normalizeRole(row.Role),
				Text: row.Text,
			},
			Score: round2(row.Score),
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *RemoteFacade) RAGAnswer(ctx context.Context, docID, question string) (*domain.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, &domain.PreconditionError{Field: "question"}
	}
	hits, err := f.Search(ctx, docID, question)
	if err != nil {
		return nil, err
	}
	return composeRAGAnswer(hits), nil
}

// normalizeCitations folds the engine's citation shapes into the canonical
// {clause_id, role, score}. Citations without a role are resolved against the
// document's known clause set; unresolvable ones get OTHER.
func (f *RemoteFacade) normalizeCitations(docID string, rows []service.EngineCitation) []domain.Citation {
	var known map[int]domain.Role
	if f.store.Has(docID) {
		known = make(map[int]domain.Role)
		for _, c := range f.store.Clauses(docID) {
			known[c.ID] = c.Role
		}
	}

	out := make([]domain.Citation, 0, len(rows))
	for _, row := range rows {
		id := citationID(row)
		role := normalizeRole(row.Role)
		if row.Role == "" {
			if r, ok := known[id]; ok {
				role = r
			}
		}
		out = append(out, domain.Citation{ClauseID: id, Role: role, Score: round2(row.Score)})
	}
	return out
}

// citationID picks the clause id from whichever field the engine used.
func citationID(row service.EngineCitation) int {
	if row.I != nil {
		return *row.I
	}
	if row.ID != nil {
		return *row.ID
	}
	return 0
}

func normalizeRole(raw string) domain.Role {
	r := domain.Role(strings.ToUpper(strings.TrimSpace(raw)))
	if domain.ValidRole(r) {
		return r
	}
	return domain.RoleOther
}

// mapEngineError normalizes error strings the engine embeds in 2xx bodies.
func mapEngineError(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not indexed"):
		return domain.ErrNotIndexed
	case strings.Contains(lower, "not found"):
		return domain.ErrDocNotFound
	default:
		return &domain.ServerError{Status: http.StatusOK, Body: msg}
	}
}
