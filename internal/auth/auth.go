// Package auth is the identity service: signup, signin and bearer-token
// resolution. Credentials and sessions live in the same flat record store
// as everything else, under cred:<email> and token:<uuid> keys.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dali-debug/Jinen/internal/kvstore"
	"github.com/Dali-debug/Jinen/internal/records"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type credential struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}

type session struct {
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Service struct {
	kv       kvstore.Store
	users    *records.Store
	tokenTTL time.Duration
}

func NewService(kv kvstore.Store, users *records.Store, tokenTTL time.Duration) *Service {
	return &Service{kv: kv, users: users, tokenTTL: tokenTTL}
}

// SignUp creates the credential and the user profile record atomically.
// userType must be "parent" or "nursery".
func (s *Service) SignUp(ctx context.Context, email, password, name, userType string) (*records.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := records.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		UserType:  userType,
		CreatedAt: time.Now().UTC(),
	}

	err = s.kv.Update(ctx, func(txn kvstore.Txn) error {
		var existing credential
		err := txn.Get(ctx, credentialKey(email), &existing)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, kvstore.ErrNotFound) {
			return err
		}

		cred := credential{UserID: user.ID, PasswordHash: string(hash)}
		if err := txn.Set(ctx, credentialKey(email), cred); err != nil {
			return err
		}
		return txn.Set(ctx, userKey(user.ID), user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SignIn verifies the password and issues a bearer token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, *records.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var cred credential
	if err := s.kv.Get(ctx, credentialKey(email), &cred); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUser(ctx, cred.UserID)
	if err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	sess := session{
		UserID:    cred.UserID,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	}
	if err := s.kv.Set(ctx, tokenKey(token), sess); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UserFromToken resolves a bearer token to its user. Expired and unknown
// tokens both come back as ErrInvalidToken.
func (s *Service) UserFromToken(ctx context.Context, token string) (*records.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var sess session
	if err := s.kv.Get(ctx, tokenKey(token), &sess); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func credentialKey(email string) string { return "cred:" + email }
func tokenKey(token string) string      { return "token:" + token }
func userKey(userID string) string      { return "user:" + userID }
