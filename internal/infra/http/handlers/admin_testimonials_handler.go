package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edgeup/edgeup-api/internal/entity"
)

type TestimonialAdminHandler struct {
	repo entity.TestimonialRepositoryInterface
}

func NewTestimonialAdminHandler(repo entity.TestimonialRepositoryInterface) *TestimonialAdminHandler {
	return &TestimonialAdminHandler{repo: repo}
}

type TestimonialRequest struct {
	Quote       string `json:"quote"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Institution string `json:"institution"`
	Avatar      string `json:"avatar"`
}

func (req TestimonialRequest) valid() bool {
	return strings.TrimSpace(req.Quote) != "" && strings.TrimSpace(req.Name) != ""
}

func (h *TestimonialAdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load testimonials"})
		return
	}
	if items == nil {
		items = []entity.Testimonial{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *TestimonialAdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}
	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quote and name are required"})
		return
	}

	t := entity.NewTestimonial(req.Quote, req.Name, req.Position, req.Institution, req.Avatar)

	if err := h.repo.Create(r.Context(), t); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create testimonial"})
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

func (h *TestimonialAdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}
	if !req.valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quote and name are required"})
		return
	}

	t := &entity.Testimonial{
		ID:          id,
		Quote:       req.Quote,
		Name:        req.Name,
		Position:    req.Position,
		Institution: req.Institution,
		Avatar:      req.Avatar,
	}

	if err := h.repo.Update(r.Context(), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "testimonial not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update testimonial"})
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *TestimonialAdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "testimonial not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete testimonial"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
