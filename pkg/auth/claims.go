package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/voguelabs/storefront-backend/pkg/enums"
)

// AccessTokenPayload carries the session fields minted into a token.
type AccessTokenPayload struct {
	UserID string
	Email  string
	Role   enums.UserRole
}

// AccessTokenClaims is the JWT claim set for a storefront session.
type AccessTokenClaims struct {
	UserID string         `json:"uid"`
	Email  string         `json:"email"`
	Role   enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}
