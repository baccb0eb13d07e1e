package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/clause"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/facade"
	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/session"
)

// Handler serves the dashboard-facing document review routes.
type Handler struct {
	facade   facade.Facade
	store    *clause.Store
	sessions *session.Repository // nil disables last-doc persistence
}

func NewHandler(f facade.Facade, store *clause.Store, sessions *session.Repository) *Handler {
	return &Handler{facade: f, store: store, sessions: sessions}
}

// UploadDoc accepts a multipart upload and registers the document.
func (h *Handler) UploadDoc(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file selected"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer file.Close()

	doc, err := h.facade.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}

	sid := h.sessionID(c)
	if h.sessions != nil && sid != "" {
		if err := h.sessions.SetLastDoc(c.Request.Context(), sid, doc.DocID); err != nil {
			log.Printf("[warn] operation=upload message=failed to persist last doc id: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"doc": doc})
}

// Summarize produces a paragraph or bullet summary for the document.
func (h *Handler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return
	}

	summary, err := h.facade.Summarize(c.Request.Context(), c.Param("id"), req.Mode)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// IndexDoc prepares the document's retrieval index.
func (h *Handler) IndexDoc(c *gin.Context) {
	docID := c.Param("id")
	if err := h.facade.Index(c.Request.Context(), docID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "doc_id": docID})
}

// Ask answers a question against the document with citations.
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if fields := req.Validate(); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return
	}

	answer, err := h.facade.Ask(c.Request.Context(), c.Param("id"), req.Question, req.K)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// Search ranks the document's clauses against the q parameter.
func (h *Handler) Search(c *gin.Context) {
	results, err := h.facade.Search(c.Request.Context(), c.Param("id"), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListClauses returns risk-annotated clauses, optionally filtered by role.
func (h *Handler) ListClauses(c *gin.Context) {
	role := domain.Role(strings.ToUpper(strings.TrimSpace(c.Query("role"))))
	if role != "" && !domain.ValidRole(role) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"role": "must be one of FACTS, ISSUE, ARG, REASON, HOLDING, ORDER, OTHER"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clauses": h.store.ListClauses(c.Param("id"), role)})
}

// GetDoc returns the active document's metadata plus the session's last used
// doc id, so the dashboard can restore context across reloads.
func (h *Handler) GetDoc(c *gin.Context) {
	lastDocID := ""
	sid := h.sessionID(c)
	if h.sessions != nil && sid != "" {
		var err error
		lastDocID, err = h.sessions.GetLastDoc(c.Request.Context(), sid)
		if err != nil {
			log.Printf("[warn] operation=get_doc message=failed to read last doc id: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"doc":         h.store.GetDocumentMeta(lastDocID),
		"last_doc_id": lastDocID,
	})
}

// RoleSummaries returns the canned role-wise summaries for the dashboard.
func (h *Handler) RoleSummaries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summaries": clause.RoleSummaries()})
}

// sessionID reads the caller's session id, issuing a fresh one (echoed in the
// response header) when the caller has none yet.
func (h *Handler) sessionID(c *gin.Context) string {
	sid := strings.TrimSpace(c.GetHeader("X-Session-Id"))
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Writer.Header().Set("X-Session-Id", sid)
	return sid
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var precond *domain.PreconditionError
	var serverErr *domain.ServerError
	var transportErr *domain.TransportError

	switch {
	case errors.As(err, &precond):
		c.JSON(http.StatusBadRequest, gin.H{"error": precond.Error()})
	case errors.Is(err, domain.ErrDocNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
	case errors.Is(err, domain.ErrNotIndexed):
		c.JSON(http.StatusConflict, gin.H{"error": "document not indexed; call index first"})
	case errors.Is(err, domain.ErrUnrecognizedSummaryShape):
		c.JSON(http.StatusBadGateway, gin.H{"error": "engine returned an unrecognized summary shape"})
	case errors.As(err, &serverErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "engine request failed", "engine_status": serverErr.Status})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "engine unreachable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
