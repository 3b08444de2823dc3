package middleware

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	actorRoleKey contextKey = "actor_role"
)

// RequestIDFromContext returns the request id seeded by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// UserIDFromContext returns the authenticated user id, or "" for
// anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// ActorRoleFromContext returns the authenticated role, or "".
func ActorRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(actorRoleKey).(string)
	return role
}
