package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// ErrNotFound reports that no value is stored under the requested key.
var ErrNotFound = errors.New("kv: key not found")

// Store is the durable key-value surface the stateful stores persist to.
// Each store writes its whole collection as one serialized document under
// a fixed key, the same way the storefront used browser local storage.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Open builds the Store selected by configuration.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	switch cfg.KV.Driver {
	case config.KVDriverSQLite, config.KVDriverPostgres:
		return NewGormStore(ctx, cfg.KV, logg)
	case config.KVDriverRedis:
		return NewRedisStore(ctx, cfg.Redis, logg)
	case config.KVDriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported kv driver %q", cfg.KV.Driver)
	}
}
