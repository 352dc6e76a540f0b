package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edgeup/edgeup-api/internal/content"
)

type ContentHandler struct {
	resolver *content.Resolver
}

func NewContentHandler(resolver *content.Resolver) *ContentHandler {
	return &ContentHandler{resolver: resolver}
}

type PageContentResponse struct {
	Page   string `json:"page"`
	Blocks any    `json:"blocks"`
}

// HandleGetPage serves the resolved block set for a public page. Unknown page
// keys are not an error; they resolve to the generic defaults.
func (h *ContentHandler) HandleGetPage(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")
	if pageKey == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "page key is required"})
		return
	}

	blocks := h.resolver.Blocks(pageKey)

	writeJSON(w, http.StatusOK, PageContentResponse{
		Page:   pageKey,
		Blocks: blocks,
	})
}
