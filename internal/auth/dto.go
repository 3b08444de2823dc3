package auth

import "github.com/voguelabs/storefront-backend/pkg/enums"

// Session is the signed-in user. At most one session is active.
type Session struct {
	ID     string         `json:"id"`
	Email  string         `json:"email"`
	Name   string         `json:"name"`
	Avatar string         `json:"avatar,omitempty"`
	Role   enums.UserRole `json:"role"`
}

// LoginRequest is the payload for the mock login. The password is
// accepted but never verified.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginResponse returns the minted token alongside the session.
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	Session     Session `json:"session"`
}
