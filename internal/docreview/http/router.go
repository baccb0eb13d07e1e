package http

import "github.com/gin-gonic/gin"

// Register wires the document review routes onto the API group.
func Register(api gin.IRouter, h *Handler) {
	docs := api.Group("/docs")
	docs.POST("", h.UploadDoc)
	docs.POST("/:id/summarize", h.Summarize)
	docs.POST("/:id/index", h.IndexDoc)
	docs.POST("/:id/ask", h.Ask)
	docs.GET("/:id/search", h.Search)
	docs.GET("/:id/clauses", h.ListClauses)

	api.GET("/doc", h.GetDoc)
	api.GET("/summaries", h.RoleSummaries)
}
