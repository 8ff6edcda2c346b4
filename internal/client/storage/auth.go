package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines the interface for storing the authenticated session
// on the client. It works with raw data only; token parsing and expiry
// checks happen in the auth service layer.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any existing session.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if no auth data exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout). Idempotent.
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the authenticated session in storage.
type AuthData struct {
	Email       string `json:"email"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}
