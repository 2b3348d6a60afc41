package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nursing-locator/internal/config"
	"github.com/nursing-locator/internal/infrastructure/overpass"
	"github.com/nursing-locator/internal/pkg/logger"
	"github.com/nursing-locator/internal/pkg/tracing"
	"github.com/nursing-locator/internal/repository/cache"
	redisRepo "github.com/nursing-locator/internal/repository/redis"
	"github.com/nursing-locator/internal/repository/static"
	"github.com/nursing-locator/internal/usecase"
	"github.com/nursing-locator/internal/worker"
	"github.com/nursing-locator/internal/worker/places"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.NewService(cfg.Log.Level, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting places worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("warm_interval", cfg.Worker.WarmInterval),
		zap.Strings("warm_cities", cfg.Worker.WarmCities))

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint != "" {
		shutdownTracing, err := tracing.Setup(context.Background(), &cfg.Tracing)
		if err != nil {
			log.Warn("Tracing disabled", zap.Error(err))
		} else {
			log.Info("Tracing enabled", zap.String("endpoint", cfg.Tracing.Endpoint))
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(ctx); err != nil {
					log.Error("Failed to flush traces", zap.Error(err))
				}
			}()
		}
	}

	// 3. Connect to Redis. Воркеру Redis обязателен: без него нет ни стрима, ни кеша
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 5. Initialize use cases
	placeUC := usecase.NewPlaceUseCase(
		overpass.NewClient(&cfg.Overpass, log),
		static.NewFallbackRepository(),
		cacheRepo,
		log,
		usecase.PlaceConfig{
			CacheTTL:    cfg.Cache.PlacesCacheTTL,
			FallbackTTL: cfg.Cache.FallbackCacheTTL,
			MaxRetries:  cfg.Cache.MaxRetries,
			RetryDelay:  cfg.Cache.RetryDelay,
		},
	)

	// 6. Initialize workers
	refreshWorker := places.NewRefreshWorker(streamRepo, placeUC, cfg.Worker.ConsumerGroup, log)
	cacheWarmer := places.NewCacheWarmer(placeUC, cfg.Worker.WarmInterval, cfg.Worker.WarmCities, log)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(refreshWorker)
	workerManager.Register(cacheWarmer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := workerManager.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
