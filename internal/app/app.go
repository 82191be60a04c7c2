// Package app wires configuration, storage, services, and the HTTP server
// together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/companions-backend/internal/adapter/postgres"
	bookmarkrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/bookmark"
	companionrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/companion"
	historyrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/history"
	subscriptionrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/subscription"
	"github.com/heartmarshall/companions-backend/internal/adapter/rediscache"
	"github.com/heartmarshall/companions-backend/internal/auth"
	"github.com/heartmarshall/companions-backend/internal/config"
	bookmarksvc "github.com/heartmarshall/companions-backend/internal/service/bookmark"
	companionsvc "github.com/heartmarshall/companions-backend/internal/service/companion"
	historysvc "github.com/heartmarshall/companions-backend/internal/service/history"
	"github.com/heartmarshall/companions-backend/internal/transport/middleware"
	"github.com/heartmarshall/companions-backend/internal/transport/rest"
)

type cacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// Run is the application entry point. It loads configuration, connects to
// the database and cache, wires services and handlers, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	invalidator, redisClient := newInvalidator(cfg.Cache, logger)
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck
	}

	// Repositories.
	companions := companionrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	history := historyrepo.New(pool)
	subscriptions := subscriptionrepo.New(pool)

	// Services.
	companionService := companionsvc.NewService(logger, companions, subscriptions,
		cfg.Companion.DefaultPageSize, cfg.Companion.MaxPageSize)
	bookmarkService := bookmarksvc.NewService(logger, bookmarks, invalidator)
	historyService := historysvc.NewService(logger, history, invalidator,
		cfg.Companion.DefaultHistoryLimit, cfg.Companion.MaxHistoryLimit)

	// HTTP handlers.
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	companionHandler := rest.NewCompanionHandler(companionService, logger)
	bookmarkHandler := rest.NewBookmarkHandler(bookmarkService, logger)
	historyHandler := rest.NewHistoryHandler(historyService, logger)

	mux := rest.NewMux(healthHandler, companionHandler, bookmarkHandler, historyHandler)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	mws = append(mws, middleware.Auth(jwtManager))

	handler := middleware.Chain(mws...)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// newInvalidator builds the page-cache invalidation signal. Without a
// configured Redis address the noop variant is used and mutations skip the
// signal entirely.
func newInvalidator(cfg config.CacheConfig, logger *slog.Logger) (cacheInvalidator, *redis.Client) {
	if cfg.Addr == "" {
		logger.Info("cache invalidation disabled, no redis address configured")
		return rediscache.Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return rediscache.New(client, cfg.KeyPrefix, cfg.Channel), client
}
