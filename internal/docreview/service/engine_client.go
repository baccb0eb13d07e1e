package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/api/http/middleware"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
)

// EngineClient handles communication with the summarization/RAG engine.
// The engine is an opaque HTTP API: this client owns timeouts, rate limiting,
// request-id propagation and the transport/server error taxonomy; payload
// shape normalization is the facade's job.
type EngineClient struct {
	baseURL       string
	defaultClient *http.Client
	heavyClient   *http.Client // upload/summarize carry large payloads or heavy compute
	limiter       *rate.Limiter
}

// NewEngineClient creates a client for the engine at baseURL. rps/burst bound
// the request rate against the engine; rps <= 0 disables limiting.
func NewEngineClient(baseURL string, rps float64, burst int) *EngineClient {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}
	return &EngineClient{
		baseURL:       baseURL,
		defaultClient: &http.Client{Timeout: DefaultTimeout},
		heavyClient:   &http.Client{Timeout: HeavyTimeout},
		limiter:       rate.NewLimiter(limit, burst),
	}
}

// SummarizeResult is the raw summarize reply. Summary is kept undecoded
// because the engine returns either a string or a sequence.
type SummarizeResult struct {
	DocID   string          `json:"doc_id"`
	Summary json.RawMessage `json:"summary"`
	Error   string          `json:"error"`
}

// IndexResult is the engine's index ack. Clauses is populated by engines that
// return the extracted clause set alongside the ack.
type IndexResult struct {
	DocID     string          `json:"doc_id"`
	Sentences int             `json:"sentences"`
	Retriever string          `json:"retriever"`
	Clauses   []domain.Clause `json:"clauses"`
	Error     string          `json:"error"`
}

// EngineCitation is a citation as the engine emits it. The two observed
// shapes ({i, score} on the ask path, {id, role} on the search path) are both
// representable; the facade folds them into the canonical domain.Citation.
type EngineCitation struct {
	I     *int    `json:"i"`
	ID    *int    `json:"id"`
	Role  string  `json:"role"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

// AskResult is the raw ask reply.
type AskResult struct {
	Answer    string           `json:"answer"`
	Citations []EngineCitation `json:"citations"`
	Error     string           `json:"error"`
}

// SearchResult is the raw semantic-search reply.
type SearchResult struct {
	Results []EngineCitation `json:"results"`
	Error   string           `json:"error"`
}

// Upload sends the file to the engine as a multipart form.
func (c *EngineClient) Upload(ctx context.Context, filename string, r io.Reader) (*domain.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc domain.Document
	if err := c.do(ctx, "upload", c.heavyClient, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Summarize requests a summary for the document in the given mode.
func (c *EngineClient) Summarize(ctx context.Context, docID, mode string) (*SummarizeResult, error) {
	req, err := c.jsonRequest(ctx, "/summarize", map[string]any{"doc_id": docID, "mode": mode})
	if err != nil {
		return nil, err
	}
	var res SummarizeResult
	if err := c.do(ctx, "summarize", c.heavyClient, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// do performs the request, records metrics and maps failures into the error
// taxonomy. A nil out skips body decoding.
func (c *EngineClient) do(ctx context.Context, op string, client *http.Client, req *http.Request, out any) error {
	logger := NewLogger(ctx)
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	if rid := middleware.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.LogError(op, err)
		recordEngineCall(duration, err)
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		serr := &domain.ServerError{Status: resp.StatusCode, Body: string(body)}
		logger.LogWarnf(op, "engine returned status %d", resp.StatusCode)
		recordEngineCall(duration, serr)
		return serr
	}
	recordEngineCall(duration, nil)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (c *EngineClient) jsonRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Index asks the engine to build the retrieval index for the document.
func (c *EngineClient) Index(ctx context.Context, docID string) (*IndexResult, error) {
	req, err := c.jsonRequest(ctx, "/index", map[string]any{"doc_id": docID})
	if err != nil {
		return nil, err
	}
	var res IndexResult
	if err := c.do(ctx, "index", c.defaultClient, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Ask poses a question against the document's retrieval index.
func (c *EngineClient) Ask(ctx context.Context, docID, question string, k int) (*AskResult, error) {
	req, err := c.jsonRequest(ctx, "/ask", map[string]any{"doc_id": docID, "question": question, "k": k})
	if err != nil {
		return nil, err
	}
	var res AskResult
	if err := c.do(ctx, "ask", c.defaultClient, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Search queries the engine's semantic-search endpoint. Engines predating the
// endpoint answer 404/405, which surfaces as a ServerError for the facade's
// local fallback.
func (c *EngineClient) Search(ctx context.Context, docID, query string) (*SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	u.Path += "/search"
	q := u.Query()
	q.Set("doc_id", docID)
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	var res SearchResult
	if err := c.do(ctx, "search", c.defaultClient, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
