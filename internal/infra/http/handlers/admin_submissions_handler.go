package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edgeup/edgeup-api/internal/entity"
)

// SubmissionAdminHandler exposes the admin-side lead workflow: listing
// enquiries, marking them read and advancing their status. The submission
// pipeline itself never performs these mutations.
type SubmissionAdminHandler struct {
	repo entity.SubmissionRepositoryInterface
}

func NewSubmissionAdminHandler(repo entity.SubmissionRepositoryInterface) *SubmissionAdminHandler {
	return &SubmissionAdminHandler{repo: repo}
}

func (h *SubmissionAdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load submissions"})
		return
	}
	if subs == nil {
		subs = []entity.FormSubmission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *SubmissionAdminHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "submission not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update submission"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *SubmissionAdminHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	status := entity.SubmissionStatus(req.Status)
	if !status.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "submission not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update submission"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
