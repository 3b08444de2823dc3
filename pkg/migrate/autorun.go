package migrate

import (
	"context"
	"database/sql"

	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

type sqlBacked interface {
	SQLDB() (*sql.DB, error)
	Dialect() string
}

// MaybeRunDev executes migrations automatically when the app is running in
// dev mode and the feature flag is enabled. Non-SQL kv backends have no
// schema and are skipped.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, store kv.Store) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	backed, ok := store.(sqlBacked)
	if !ok {
		return nil
	}

	sqlDB, err := backed.SQLDB()
	if err != nil {
		return err
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dialect": backed.Dialect()})
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, backed.Dialect(), "up"); err != nil {
		return err
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
