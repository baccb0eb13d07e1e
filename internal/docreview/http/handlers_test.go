package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/facade"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/session"
)

func newTestRouter(t *testing.T, sessions *session.Repository) (*gin.Engine, *clause.Store) {
	gin.SetMode(gin.TestMode)
	store := clause.NewStore()
	h := NewHandler(facade.NewLocalFixtureFacade(store), store, sessions)
	r := gin.New()
	Register(r.Group("/api/v1"), h)
	return r, store
}

func newSessionRepo(t *testing.T) *session.Repository {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return session.NewRepository(client, time.Hour)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func doJSON(r *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadDoc(t *testing.T) {
	r, _ := newTestRouter(t, newSessionRepo(t))

	body, ct := multipartBody(t, "file", "contract.txt", "The parties agreed. Termination requires notice.")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/docs", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("X-Session-Id", "sess-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "sess-1", w.Header().Get("X-Session-Id"))

	var resp struct {
		Doc struct {
			DocID string `json:"doc_id"`
			Title string `json:"title"`
			Chars int    `json:"chars"`
		} `json:"doc"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Doc.DocID, 8)
	assert.Equal(t, "contract.txt", resp.Doc.Title)
	assert.Positive(t, resp.Doc.Chars)
}

func TestUploadDoc_NoFile(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file selected")
}

func TestUploadDoc_PersistsLastDoc(t *testing.T) {
	sessions := newSessionRepo(t)
	r, _ := newTestRouter(t, sessions)

	body, ct := multipartBody(t, "file", "a.txt", "Short text.")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/docs", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("X-Session-Id", "sess-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/doc", "", map[string]string{"X-Session-Id": "sess-42"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		LastDocID string `json:"last_doc_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.LastDocID, 8)
}

func TestSummarize(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/summarize", `{"mode":"extractive"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Summary struct {
			Kind  string `json:"kind"`
			Items []struct {
				Text string `json:"text"`
			} `json:"items"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bullets", resp.Summary.Kind)
	assert.NotEmpty(t, resp.Summary.Items)
}

func TestSummarize_EmptyBodyDefaultsMode(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/summarize", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSummarize_InvalidMode(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/summarize", `{"mode":"haiku"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Mode")
}

func TestSummarize_UnknownDoc(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/nope/summarize", `{"mode":"extractive"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexDoc(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/index", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestAsk(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/ask", `{"question":"What is the notice period for termination?"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Answer    string `json:"answer"`
		Citations []struct {
			ClauseID int     `json:"clause_id"`
			Role     string  `json:"role"`
			Score    float64 `json:"score"`
		} `json:"citations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Answer, "Likely answer: "))
	require.NotEmpty(t, resp.Citations)
	assert.LessOrEqual(t, len(resp.Citations), 3)
}

func TestAsk_ValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/ask", `{"k":5}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Question")

	w = doJSON(r, http.MethodPost, "/api/v1/docs/doc-001/ask", `{"question":"x","k":99}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "K")
}

func TestSearch(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/docs/doc-001/search?q=termination", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			ID    int     `json:"id"`
			Score float64 `json:"score"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Results)
	for _, res := range resp.Results {
		assert.Positive(t, res.Score)
	}
}

func TestListClauses(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/docs/doc-001/clauses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Clauses []struct {
			ID   int     `json:"id"`
			Role string  `json:"role"`
			Risk float64 `json:"risk"`
		} `json:"clauses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Clauses, 7)
}

func TestListClauses_RoleFilter(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/docs/doc-001/clauses?role=holding", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Clauses []struct {
			Role string `json:"role"`
		} `json:"clauses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Clauses)
	for _, c := range resp.Clauses {
		assert.Equal(t, "HOLDING", c.Role)
	}
}

func TestListClauses_InvalidRole(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/docs/doc-001/clauses?role=VERDICT", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetDoc_NoSessionStore(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/doc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"last_doc_id":""`)
	assert.NotEmpty(t, w.Header().Get("X-Session-Id"), "a fresh session id is issued")
}

func TestRoleSummaries(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/summaries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summaries map[string][]string `json:"summaries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Summaries, "HOLDING")
	assert.NotEmpty(t, resp.Summaries["HOLDING"])
}
