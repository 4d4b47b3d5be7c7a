// @title           Revesshop API
// @version         1.0
// @description     Storefront backend: accounts, product catalog and currency conversion.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/revesshop/storefront-api/internal/api"
	"github.com/revesshop/storefront-api/internal/api/handler"
	"github.com/revesshop/storefront-api/internal/core/ports"
	"github.com/revesshop/storefront-api/internal/infrastructure/config"
	"github.com/revesshop/storefront-api/internal/infrastructure/db/mongo"
	"github.com/revesshop/storefront-api/internal/infrastructure/db/redis"
	"github.com/revesshop/storefront-api/internal/infrastructure/exchangerate"
	"github.com/revesshop/storefront-api/pkg/logger"
)

const idempotencyTTL = 24 * time.Hour

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := run(); err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("server exited")
	}
}

// run serves the API until a shutdown signal arrives or the listener fails.
// Errors are returned so the deferred Close calls still execute.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront-api",
	})

	store, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("close mongo")
		}
	}()

	checks := map[string]handler.CheckFunc{"mongodb": store.Ping}

	var idem ports.IdempotencyStore
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, Idempotency-Key disabled")
	} else {
		defer rdb.Close()
		idem = redis.NewIdempotencyStore(rdb, idempotencyTTL)
		checks["redis"] = redis.Checker(rdb)
	}

	e := api.NewRouter(api.Deps{
		Config:      cfg,
		Logger:      log,
		Users:       store.Users,
		Products:    store.Products,
		Idempotency: idem,
		Rates:       exchangerate.New(cfg.Exchange.BaseURL, nil, cfg.Exchange.Timeout),
		Checks:      checks,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	return nil
}
