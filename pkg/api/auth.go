package api

// LoginRequest represents an authentication request against the backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a successful authentication response.
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	UserID      string `json:"user_id"`      // UUID of the authenticated user
	ExpiresIn   int64  `json:"expires_in"`   // access token lifetime in seconds
}

// ErrorResponse represents an error payload from the backend.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
