package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/doubleentry/internal/adapter/http"
	"github.com/iho/doubleentry/internal/adapter/http/handler"
	memoryRepo "github.com/iho/doubleentry/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/doubleentry/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/doubleentry/internal/adapter/repository/redis"
	"github.com/iho/doubleentry/internal/infrastructure/config"
	"github.com/iho/doubleentry/internal/infrastructure/logger"
	"github.com/iho/doubleentry/internal/infrastructure/metrics"
	"github.com/iho/doubleentry/internal/infrastructure/postgres"
	"github.com/iho/doubleentry/internal/infrastructure/redis"
	"github.com/iho/doubleentry/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Pick the ledger backend
	var (
		repo    usecase.LedgerRepository
		pingers []handler.Pinger
	)

	switch cfg.StorageBackend {
	case "postgres":
		if cfg.MigrateOnStart {
			if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()
		log.Info().Msg("connected to postgres")

		repo = postgresRepo.NewRepository(pool, postgresRepo.NewRetrier(appLogger), postgresRepo.NewULIDGenerator())
		pingers = append(pingers, pool)

	case "memory":
		repo = memoryRepo.NewRepository()

	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("unknown storage backend")
	}

	// Optional Redis-backed idempotency
	var idempotencyStore usecase.IdempotencyStore

	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		pingers = append(pingers, redisPinger{client: redisClient})
	}

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(repo)
	transferUC := usecase.NewTransferUseCase(repo)

	// Initialize handlers
	m := metrics.New()
	accountHandler := handler.NewAccountHandler(accountUC, m)
	transferHandler := handler.NewTransferHandler(transferUC, m)
	healthHandler := handler.NewHealthHandler(pingers...)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		TransferHandler:  transferHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("backend", cfg.StorageBackend).Msg("starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// redisPinger adapts the go-redis status command to the handler.Pinger
// contract.
type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
