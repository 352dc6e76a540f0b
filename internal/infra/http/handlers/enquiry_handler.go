package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/edgeup/edgeup-api/internal/infra/http/middleware"
	"github.com/edgeup/edgeup-api/internal/usecase"
)

// EnquiryHandler receives contact/demo form submissions. The client keeps the
// typed values on failure and resets the form (role back to its entry-context
// default) on success; the server contract is one JSON response per request.
type EnquiryHandler struct {
	uc          *usecase.SubmitEnquiryUseCase
	rateLimiter *RateLimiter
}

func NewEnquiryHandler(uc *usecase.SubmitEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{
		uc:          uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type SubmitEnquiryResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *EnquiryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, SubmitEnquiryResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.SubmitEnquiryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, SubmitEnquiryResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.uc.Execute(ctx, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordEnquiry(input.Role, "rejected")
			writeJSON(w, http.StatusBadRequest, SubmitEnquiryResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}

		middleware.RecordEnquiry(input.Role, "failed")
		writeJSON(w, http.StatusInternalServerError, SubmitEnquiryResponse{
			Success: false,
			Message: usecase.MsgSubmitFailed,
		})
		return
	}

	middleware.RecordEnquiry(input.Role, "accepted")
	writeJSON(w, http.StatusCreated, SubmitEnquiryResponse{
		Success: true,
		ID:      output.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
