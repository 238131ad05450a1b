package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

const (
	// sessionKeyPrefix maps token -> user id
	sessionKeyPrefix = "session:"
	// userSessionKeyPrefix maps user id -> current token, so issuing a new
	// session can revoke the previous one
	userSessionKeyPrefix = "user_session:"
)

// Sessions is the server-side session table. A bearer token is only ever an
// opaque key into this table; the raw user id is never accepted as a credential.
type Sessions struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessions(client *redis.Client, ttl time.Duration) *Sessions {
	return &Sessions{client: client, ttl: ttl}
}

// Save stores token -> userID with the configured TTL and records the
// user -> token mapping.
func (s *Sessions) Save(ctx context.Context, token, userID string) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if err := s.client.Set(ctx, userSessionKeyPrefix+userID, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("store user session mapping: %w", err)
	}
	return nil
}

// Resolve returns the user id bound to the token. Unknown or expired tokens
// yield models.ErrSessionNotFound.
func (s *Sessions) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", models.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// Delete removes a session and its user mapping.
func (s *Sessions) Delete(ctx context.Context, token string) error {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == nil && userID != "" {
		s.client.Del(ctx, userSessionKeyPrefix+userID)
	}
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// DeleteByUser revokes the user's current session, if any.
func (s *Sessions) DeleteByUser(ctx context.Context, userID string) error {
	token, err := s.client.Get(ctx, userSessionKeyPrefix+userID).Result()
	if err == nil && token != "" {
		s.client.Del(ctx, sessionKeyPrefix+token)
	}
	return s.client.Del(ctx, userSessionKeyPrefix+userID).Err()
}
