package controllers

import (
	"net/http"

	"github.com/voguelabs/storefront-backend/api/responses"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// HealthLive reports process liveness.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady reports readiness, which requires the kv backend to answer
// a ping.
func HealthReady(store kv.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "kv backend unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
