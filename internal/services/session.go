package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

// SessionStore is the server-side table binding tokens to user ids.
// Resolve must report an unknown or expired token as models.ErrSessionNotFound.
type SessionStore interface {
	Save(ctx context.Context, token, userID string) error
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// Sessions issues and resolves opaque bearer tokens. A request proves it acts
// for an account only by presenting a token this service minted and recorded;
// raw account ids are never accepted.
type Sessions struct {
	store SessionStore
}

func NewSessions(store SessionStore) *Sessions {
	return &Sessions{store: store}
}

// Issue mints a fresh token for the user and records it. Any previous session
// for the same user is revoked first, so the TTL always restarts at login.
func (s *Sessions) Issue(ctx context.Context, userID string) (string, error) {
	// Best effort: a stale mapping only means the old token expires on its own TTL
	_ = s.store.DeleteByUser(ctx, userID)

	token := uuid.NewString()
	if err := s.store.Save(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a presented token back to its user id. A value that is not even
// token-shaped is models.ErrMalformedToken (the transport turns that into a
// bad request); an unknown or expired token is models.ErrSessionNotFound.
func (s *Sessions) Resolve(ctx context.Context, token string) (string, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", models.ErrMalformedToken
	}
	return s.store.Resolve(ctx, token)
}

// Invalidate revokes a token. Unknown tokens are not an error: logout is
// idempotent.
func (s *Sessions) Invalidate(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return models.ErrMalformedToken
	}
	return s.store.Delete(ctx, token)
}
