package config

// EnvPrefix namespaces every storefront environment variable.
const EnvPrefix = "VOGUE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, shared with tests and deploy tooling.
const (
	EnvAppEnv     = "VOGUE_APP_ENV"
	EnvPort       = "VOGUE_APP_PORT"
	EnvLogLevel   = "VOGUE_LOG_LEVEL"
	EnvKVDriver   = "VOGUE_KV_DRIVER"
	EnvKVDSN      = "VOGUE_KV_DSN"
	EnvRedisURL   = "VOGUE_REDIS_URL"
	EnvJWTSecret  = "VOGUE_JWT_SECRET"
	EnvJWTIssuer  = "VOGUE_JWT_ISSUER"
	EnvJWTExpMins = "VOGUE_JWT_EXPIRATION_MINUTES"
)

// Durable storage keys. Each store serializes its whole collection as a
// single document under its fixed key.
const (
	StorageKeyCart     = "cart"
	StorageKeyWishlist = "wishlist"
	StorageKeySession  = "session"
)
