package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
	"github.com/mindmosaic/mindmosaic-backend/pkg/utils"
)

// UserRepository is the persistence contract the identity service needs.
// Create must report a duplicate email as models.ErrEmailTaken (backed by a
// unique index so the invariant holds under concurrent registration).
// Lookups return (nil, nil) when no account matches.
type UserRepository interface {
	Create(ctx context.Context, email, hashedPassword string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Identity handles account creation and password verification.
type Identity struct {
	users UserRepository
}

func NewIdentity(users UserRepository) *Identity {
	return &Identity{users: users}
}

// Register creates a new account with a salted argon2id hash of the password.
// Returns models.ErrEmailTaken when the email is already registered
// (case-sensitive exact match).
func (s *Identity) Register(ctx context.Context, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, email, hashed)
}

// Authenticate verifies an email/password pair. Unknown email yields
// models.ErrAccountNotFound, a failed password check models.ErrInvalidCredentials.
// No side effects either way.
func (s *Identity) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrAccountNotFound
	}

	valid, err := utils.VerifyPassword(password, user.HashedPassword)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// FindByEmail is an exact-match lookup. Absence is (nil, nil), not an error.
func (s *Identity) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// FindByID returns the account for a resolved session, or (nil, nil) when the
// account no longer exists.
func (s *Identity) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
