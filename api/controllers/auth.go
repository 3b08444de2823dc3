package controllers

import (
	"net/http"

	"github.com/voguelabs/storefront-backend/api/middleware"
	"github.com/voguelabs/storefront-backend/api/responses"
	"github.com/voguelabs/storefront-backend/api/validators"
	"github.com/voguelabs/storefront-backend/internal/auth"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// Login starts a simulated session for the submitted email and role.
func Login(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// Logout ends the current session. Logging out while signed out is
// harmless.
func Logout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "signed_out"})
	}
}

// GetSession returns the active session for an authenticated caller.
func GetSession(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middleware.UserIDFromContext(r.Context()) == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		session := svc.Current()
		if session == nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, session)
	}
}
