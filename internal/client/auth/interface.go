package auth

import (
	"context"
	"errors"

	"github.com/iudanet/dailywins/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// ErrNotAuthenticated is returned when no valid session exists: the user
// never logged in, logged out, or the stored token has expired.
var ErrNotAuthenticated = errors.New("not authenticated")

// Service manages the backend session: login, logout and the ambient
// current-owner lookup every write path consults before mutating data.
type Service interface {
	// Login exchanges email/password for an access token and persists
	// the session locally.
	Login(ctx context.Context, email, password string) (*storage.AuthData, error)

	// Logout removes the locally stored session. Idempotent.
	Logout(ctx context.Context) error

	// Session returns the current session, or ErrNotAuthenticated when
	// there is none or the token has expired.
	Session(ctx context.Context) (*storage.AuthData, error)
}
