package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthData is the payload returned by register and login.
type AuthData struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Register creates an account and opens a session for it. A taken email is a
// business failure: 200 with success=false, not an HTTP error.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFailure(w, http.StatusBadRequest, requestErrorMessage(err))
		return
	}

	user, err := h.identity.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			writeJSON(w, http.StatusOK, APIResponse{
				Success: false,
				Message: "User already exists",
			})
			return
		}
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID.Hex())
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    AuthData{Token: token, UserID: user.ID.Hex()},
	})
}

// Login verifies credentials and opens a session. An unknown email is 401; a
// wrong password for an existing account is 200 with success=false.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFailure(w, http.StatusBadRequest, requestErrorMessage(err))
		return
	}

	user, err := h.identity.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccountNotFound):
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		case errors.Is(err, models.ErrInvalidCredentials):
			writeJSON(w, http.StatusOK, APIResponse{
				Success: false,
				Message: "Invalid credentials",
			})
		default:
			http.Error(w, "Failed to authenticate", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID.Hex())
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    AuthData{Token: token, UserID: user.ID.Hex()},
	})
}

// Logout revokes the presented session. Revoking an already-dead session
// still succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeFailure(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.sessions.Invalidate(r.Context(), token); err != nil {
		if errors.Is(err, models.ErrMalformedToken) {
			writeFailure(w, http.StatusBadRequest, "Malformed bearer token")
			return
		}
		http.Error(w, "Failed to invalidate session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Logged out"})
}

// Me returns the account behind the presented session.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireAuth(w, r)
	if !ok {
		return
	}

	user, err := h.identity.FindByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load account", http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeFailure(w, http.StatusNotFound, "Account not found")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: user})
}
