package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/edgeup/edgeup-api/internal/content"
	"github.com/edgeup/edgeup-api/internal/entity"
)

func getPage(resolver *content.Resolver, pageKey string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/content/{pageKey}", NewContentHandler(resolver).HandleGetPage)

	req := httptest.NewRequest(http.MethodGet, "/content/"+pageKey, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestContentHandlerServesFullDefaultSet(t *testing.T) {
	// Empty snapshot simulates an unreachable content store at startup.
	resolver := content.NewResolver(nil, nil)

	rec := getPage(resolver, "home")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Page   string `json:"page"`
		Blocks []struct {
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		} `json:"blocks"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "home", resp.Page)
	assert.Len(t, resp.Blocks, 5)
	for _, b := range resp.Blocks {
		assert.NotEmpty(t, b.Payload, "block %s must carry a payload", b.Type)
	}
}

func TestContentHandlerAuthoredBlockWins(t *testing.T) {
	resolver := content.NewResolver([]entity.ContentBlock{{
		PageKey: "home",
		Type:    entity.BlockHero,
		Payload: entity.HeroPayload{Title: "Authored"},
	}}, nil)

	rec := getPage(resolver, "home")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Authored"`)
}

func TestContentHandlerUnknownPage(t *testing.T) {
	resolver := content.NewResolver(nil, nil)

	rec := getPage(resolver, "pricing")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":"pricing"`)
}
