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

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/splitledger/internal/adapter/http"
	"github.com/iho/splitledger/internal/adapter/http/handler"
	"github.com/iho/splitledger/internal/adapter/http/middleware"
	"github.com/iho/splitledger/internal/adapter/idgen"
	redisRepo "github.com/iho/splitledger/internal/adapter/repository/redis"
	"github.com/iho/splitledger/internal/infrastructure/config"
	"github.com/iho/splitledger/internal/infrastructure/logger"
	"github.com/iho/splitledger/internal/infrastructure/metrics"
	"github.com/iho/splitledger/internal/infrastructure/redis"
	"github.com/iho/splitledger/internal/infrastructure/seed"
	"github.com/iho/splitledger/internal/usecase"
)

const limiterIdleTimeout = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// app bundles the wired HTTP handler with the resources it owns.
type app struct {
	handler     http.Handler
	rateLimiter *middleware.RateLimiter
	redisClient *goredis.Client
}

func (a *app) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger, m usecase.MetricsRecorder) (*app, error) {
	ledger, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	log.Info().Int("friends", ledger.Len()).Str("seed_file", cfg.SeedFile).Msg("ledger seeded")

	ledgerUC := usecase.NewLedgerUseCase(ledger, idgen.NewULIDGenerator(), m, log)

	a := &app{}
	var idempotencyStore usecase.IdempotencyStore
	if cfg.RedisURL != "" {
		a.redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		idempotencyStore = redisRepo.NewIdempotencyStore(a.redisClient)
		log.Info().Msg("connected to redis")
	} else {
		log.Info().Msg("redis disabled, idempotency keys are ignored")
	}

	if cfg.RateLimitRPS > 0 {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	a.handler = httpAdapter.NewRouter(httpAdapter.RouterConfig{
		FriendHandler:    handler.NewFriendHandler(ledgerUC, cfg.DefaultAvatar, cfg.CurrencySymbol),
		SelectionHandler: handler.NewSelectionHandler(ledgerUC),
		SplitHandler:     handler.NewSplitHandler(ledgerUC, cfg.CurrencySymbol),
		HealthHandler:    handler.NewHealthHandler(a.redisClient),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      a.rateLimiter,
		Logger:           log,
	})

	return a, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	a, err := newApp(ctx, cfg, log, metrics.New())
	if err != nil {
		return err
	}
	defer a.Close()

	if a.rateLimiter != nil {
		go a.rateLimiter.RunCleanup(ctx, limiterIdleTimeout, limiterIdleTimeout)
	}

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
