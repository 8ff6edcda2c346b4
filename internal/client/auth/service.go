package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
	"github.com/iudanet/dailywins/internal/client/storage"
	"github.com/iudanet/dailywins/pkg/api"
)

type service struct {
	apiClient   httpClient.ClientAPI
	authStorage storage.AuthStorage
	logger      *slog.Logger
}

// NewService creates a new auth service.
func NewService(apiClient httpClient.ClientAPI, authStorage storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:   apiClient,
		authStorage: authStorage,
		logger:      logger,
	}
}

// Login exchanges email/password for an access token and persists the
// session locally.
func (s *service) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email must not be empty")
	}
	if password == "" {
		return nil, fmt.Errorf("password must not be empty")
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	userID, expiresAt := tokenClaims(resp.AccessToken)
	// The token response is authoritative when the claims are absent.
	if userID == "" {
		userID = resp.UserID
	}
	if expiresAt == 0 {
		expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	auth := &storage.AuthData{
		Email:       email,
		UserID:      userID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
	}

	if err := s.authStorage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("logged in", "user_id", auth.UserID, "email", auth.Email)

	return auth, nil
}

// Logout removes the locally stored session. The backend has no logout
// endpoint; the token simply expires server-side.
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStorage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}

// Session returns the current session, or ErrNotAuthenticated when there
// is none or the token has expired.
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if auth.ExpiresAt != 0 && time.Now().Unix() >= auth.ExpiresAt {
		s.logger.Debug("stored token expired", "expires_at", auth.ExpiresAt)
		return nil, ErrNotAuthenticated
	}

	return auth, nil
}

// tokenClaims extracts the subject and expiry from the backend-issued JWT
// without verifying the signature. The client has no signing key; the
// claims are informational only and the server re-validates every request.
func tokenClaims(tokenStr string) (userID string, expiresAt int64) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return "", 0
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0
	}

	if sub, err := claims.GetSubject(); err == nil {
		userID = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}

	return userID, expiresAt
}
