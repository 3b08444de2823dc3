package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/voguelabs/storefront-backend/api/routes"
	internalauth "github.com/voguelabs/storefront-backend/internal/auth"
	"github.com/voguelabs/storefront-backend/internal/cart"
	"github.com/voguelabs/storefront-backend/internal/catalog"
	"github.com/voguelabs/storefront-backend/internal/wishlist"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
	"github.com/voguelabs/storefront-backend/pkg/metrics"
	"github.com/voguelabs/storefront-backend/pkg/migrate"
)

const serviceName = "storefront-api"

func main() {
	// Early logger so config failures are still structured.
	logg := logger.New(logger.Options{ServiceName: serviceName})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "could not load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "invalid configuration", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "fatal", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	store, err := kv.Open(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logg.Warn(logg.WithField(ctx, "error", cerr.Error()), "kv close failed")
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, store); err != nil {
		return err
	}

	storeMetrics := metrics.NewStoreMetrics(prometheus.DefaultRegisterer)

	catalogSvc, err := catalog.NewService(catalog.ServiceParams{})
	if err != nil {
		return err
	}
	cartSvc, err := cart.NewService(ctx, cart.ServiceParams{
		Store:   store,
		Logger:  logg,
		Metrics: storeMetrics,
	})
	if err != nil {
		return err
	}
	wishlistSvc, err := wishlist.NewService(ctx, wishlist.ServiceParams{
		Store:   store,
		Logger:  logg,
		Metrics: storeMetrics,
	})
	if err != nil {
		return err
	}
	authSvc, err := internalauth.NewService(ctx, internalauth.ServiceParams{
		Store:     store,
		Logger:    logg,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		return err
	}

	router := routes.New(routes.Dependencies{
		Config:   cfg,
		Logger:   logg,
		KV:       store,
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Wishlist: wishlistSvc,
		Auth:     authSvc,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"port":      cfg.App.Port,
			"env":       cfg.App.Env,
			"kv_driver": cfg.KV.Driver,
		}), "server listening")
		serverErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	var closeErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		closeErr = multierr.Append(closeErr, err)
	}
	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		closeErr = multierr.Append(closeErr, err)
	}
	return closeErr
}
