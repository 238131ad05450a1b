package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

type CreateEntryRequest struct {
	Text      string `json:"text"`
	MoodScore *int   `json:"mood_score"`
}

// CreateEntry persists a new journal entry for the authenticated user.
// Field-level rejections (empty text, mood score out of range) come back as
// success=false with the reason.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireAuth(w, r)
	if !ok {
		return
	}

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Field-level validation happens in the service so rejected fields come
	// back as a business failure, not a transport error
	entry, err := h.journal.CreateEntry(r.Context(), userID, req.Text, req.MoodScore)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusOK, APIResponse{Success: false, Message: verr.Error()})
		case errors.Is(err, models.ErrAccountNotFound):
			writeFailure(w, http.StatusNotFound, "Account not found")
		default:
			http.Error(w, "Failed to create journal entry", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: entry})
}

// ListEntries returns the authenticated user's entries, oldest first. Without
// limit/skip query params it returns everything.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireAuth(w, r)
	if !ok {
		return
	}

	var limit, skip int64
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	if s := r.URL.Query().Get("skip"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
			skip = n
		}
	}

	entries, err := h.journal.ListEntries(r.Context(), userID, limit, skip)
	if err != nil {
		http.Error(w, "Failed to load journal entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: entries})
}
