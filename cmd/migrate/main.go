package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/joho/godotenv"

	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
	"github.com/voguelabs/storefront-backend/pkg/migrate"
)

// Usage: migrate <command> [args], where command is any goose command
// (up, down, status, version, ...). Runs against the configured kv
// backend; only the SQL backends carry a schema.
func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-migrate"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "could not load .env file")
	}

	if len(os.Args) < 2 {
		logg.Error(ctx, "missing goose command (up, down, status, ...)", nil)
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "invalid configuration", err)
		os.Exit(1)
	}

	store, err := kv.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "opening kv backend", err)
		os.Exit(1)
	}
	defer store.Close()

	backed, ok := store.(interface {
		SQLDB() (*sql.DB, error)
		Dialect() string
	})
	if !ok {
		logg.Error(logg.WithField(ctx, "driver", cfg.KV.Driver),
			"kv driver has no schema to migrate", nil)
		os.Exit(1)
	}

	sqlDB, err := backed.SQLDB()
	if err != nil {
		logg.Error(ctx, "acquiring sql handle", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{"command": command, "dialect": backed.Dialect()})
	if err := migrate.Run(ctx, sqlDB, backed.Dialect(), command, args...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration command completed")
}
