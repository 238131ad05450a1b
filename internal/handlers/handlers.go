package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

// IdentityService is what the transport needs from the identity core.
type IdentityService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// JournalService is what the transport needs from the journal core.
type JournalService interface {
	CreateEntry(ctx context.Context, userID primitive.ObjectID, text string, moodScore *int) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]models.JournalEntry, error)
}

// SessionService issues and resolves bearer tokens.
type SessionService interface {
	Issue(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Invalidate(ctx context.Context, token string) error
}

// Handler carries the services behind the HTTP surface.
type Handler struct {
	identity IdentityService
	journal  JournalService
	sessions SessionService
	validate *validator.Validate
}

func New(identity IdentityService, journal JournalService, sessions SessionService) *Handler {
	return &Handler{
		identity: identity,
		journal:  journal,
		sessions: sessions,
		validate: validator.New(),
	}
}

// bearerToken extracts the credential from the Authorization header, or ""
// when the header is missing or not a Bearer scheme.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// requireAuth resolves the request's bearer token to a user id. On failure it
// writes the response itself and returns ok=false: missing or unknown tokens
// are 401, a value that is not even token-shaped is 400.
func (h *Handler) requireAuth(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	token := bearerToken(r)
	if token == "" {
		writeFailure(w, http.StatusUnauthorized, "Authentication required")
		return primitive.NilObjectID, false
	}

	userIDHex, err := h.sessions.Resolve(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMalformedToken):
			writeFailure(w, http.StatusBadRequest, "Malformed bearer token")
		case errors.Is(err, models.ErrSessionNotFound):
			writeFailure(w, http.StatusUnauthorized, "Invalid or expired session")
		default:
			http.Error(w, "Failed to resolve session", http.StatusInternalServerError)
		}
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		writeFailure(w, http.StatusUnauthorized, "Invalid or expired session")
		return primitive.NilObjectID, false
	}
	return userID, true
}

// requestErrorMessage flattens a validator error into one human-readable line.
func requestErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "min":
			return field + " must be at least " + fe.Param() + " characters"
		default:
			return field + " is invalid"
		}
	}
	return "Invalid request"
}
