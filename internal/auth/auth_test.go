package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dali-debug/Jinen/internal/kvstore"
	"github.com/Dali-debug/Jinen/internal/records"
)

func newTestService(ttl time.Duration) (*Service, kvstore.Store) {
	kv := kvstore.NewMemoryStore()
	return NewService(kv, records.NewStore(kv), ttl), kv
}

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(time.Hour)

	user, err := service.SignUp(ctx, "Amal@Example.com ", "secret123", "Amal", records.UserTypeParent)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	// Emails are normalized on the way in.
	assert.Equal(t, "amal@example.com", user.Email)

	token, signedIn, err := service.SignIn(ctx, "amal@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, signedIn.ID)

	// Mixed-case signin resolves the same credential.
	_, _, err = service.SignIn(ctx, "AMAL@example.com", "secret123")
	assert.NoError(t, err)

	resolved, err := service.UserFromToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(time.Hour)

	_, err := service.SignUp(ctx, "amal@example.com", "secret123", "Amal", records.UserTypeParent)
	require.NoError(t, err)

	_, err = service.SignUp(ctx, "amal@example.com", "other456", "Impostor", records.UserTypeParent)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInWrongPassword(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(time.Hour)

	_, err := service.SignUp(ctx, "amal@example.com", "secret123", "Amal", records.UserTypeParent)
	require.NoError(t, err)

	_, _, err = service.SignIn(ctx, "amal@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown emails get the same error as a wrong password.
	_, _, err = service.SignIn(ctx, "ghost@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserFromTokenRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(time.Hour)

	_, err := service.UserFromToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.UserFromToken(ctx, "not-a-session")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserFromTokenExpiry(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(-time.Minute)

	_, err := service.SignUp(ctx, "amal@example.com", "secret123", "Amal", records.UserTypeParent)
	require.NoError(t, err)

	token, _, err := service.SignIn(ctx, "amal@example.com", "secret123")
	require.NoError(t, err)

	// The TTL is already in the past, so the session is born expired.
	_, err = service.UserFromToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
