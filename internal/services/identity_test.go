package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
	"github.com/mindmosaic/mindmosaic-backend/pkg/utils"
)

func TestIdentityRegister(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	identity := NewIdentity(repo)

	user, err := identity.Register(ctx, "a@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@example.com", user.Email)
	assert.False(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())

	// The stored hash must not be the plaintext and must verify against it
	assert.NotEqual(t, "secret123", user.HashedPassword)
	valid, err := utils.VerifyPassword("secret123", user.HashedPassword)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestIdentityRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	identity := NewIdentity(repo)

	_, err := identity.Register(ctx, "a@example.com", "secret123")
	require.NoError(t, err)

	// Same email always conflicts, regardless of the password used
	_, err = identity.Register(ctx, "a@example.com", "differentpassword")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
	assert.Equal(t, 1, repo.writes)
}

func TestIdentityAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	identity := NewIdentity(repo)

	registered, err := identity.Register(ctx, "a@example.com", "secret123")
	require.NoError(t, err)
	writesAfterRegister := repo.writes

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "correct password", email: "a@example.com", password: "secret123"},
		{name: "wrong password", email: "a@example.com", password: "wrong", wantErr: models.ErrInvalidCredentials},
		{name: "unknown email", email: "b@example.com", password: "secret123", wantErr: models.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Repeat to confirm the outcome is idempotent
			for i := 0; i < 2; i++ {
				user, err := identity.Authenticate(ctx, tt.email, tt.password)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Nil(t, user)
				} else {
					require.NoError(t, err)
					assert.Equal(t, registered.ID, user.ID)
				}
			}
			// Authentication never writes
			assert.Equal(t, writesAfterRegister, repo.writes)
		})
	}
}

func TestIdentityFindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	identity := NewIdentity(repo)

	_, err := identity.Register(ctx, "a@example.com", "secret123")
	require.NoError(t, err)

	user, err := identity.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@example.com", user.Email)

	// Absence is not an error
	user, err = identity.FindByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
