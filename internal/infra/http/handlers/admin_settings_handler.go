package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edgeup/edgeup-api/internal/entity"
)

type SettingsAdminHandler struct {
	repo entity.SettingsRepositoryInterface
}

func NewSettingsAdminHandler(repo entity.SettingsRepositoryInterface) *SettingsAdminHandler {
	return &SettingsAdminHandler{repo: repo}
}

func (h *SettingsAdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.Get(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No settings row yet; serve the zero value so the admin UI can
			// populate and save it.
			writeJSON(w, http.StatusOK, entity.SiteSettings{NotifyRecipients: []string{}})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SettingsAdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var s entity.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	if err := h.repo.Update(r.Context(), &s); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save settings"})
		return
	}

	writeJSON(w, http.StatusOK, s)
}
