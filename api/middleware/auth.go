package middleware

import (
	"context"
	"net/http"
	"strings"

	pkgauth "github.com/voguelabs/storefront-backend/pkg/auth"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// Authenticate parses a bearer token when present and seeds the identity
// into the request context. The storefront serves anonymous shoppers too,
// so a missing or invalid token falls through unauthenticated rather than
// rejecting the request.
func Authenticate(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				logg.Warn(logg.WithField(r.Context(), "error", err.Error()), "bearer token rejected")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, actorRoleKey, claims.Role.String())
			ctx = logg.WithUserID(ctx, claims.UserID)
			ctx = logg.WithActorRole(ctx, claims.Role.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
