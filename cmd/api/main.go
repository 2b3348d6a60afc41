package main

// @title Nursing Locator API
// @version 1.0.0
// @description Поиск комнат для кормления (amningsrum) и пеленальных столиков (skötrum) в Швеции.
// @description Данные берутся из OpenStreetMap через Overpass API и кешируются в Redis.
// @description
// @description Основные возможности:
// @description - Список мест по городу с фильтрами nursing, changing и accessible
// @description - Поиск ближайших мест по координатам
// @description - Справочник городов и поиск города по названию
// @description - Фоновое обновление кеша через Redis Streams

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/nursing-locator/docs"
	"github.com/nursing-locator/internal/config"
	httpDelivery "github.com/nursing-locator/internal/delivery/http"
	"github.com/nursing-locator/internal/delivery/http/handler"
	"github.com/nursing-locator/internal/infrastructure/overpass"
	"github.com/nursing-locator/internal/pkg/logger"
	"github.com/nursing-locator/internal/pkg/metrics"
	"github.com/nursing-locator/internal/pkg/tracing"
	"github.com/nursing-locator/internal/repository/cache"
	redisRepo "github.com/nursing-locator/internal/repository/redis"
	"github.com/nursing-locator/internal/repository/static"
	"github.com/nursing-locator/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.NewService(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Nursing Locator API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("overpass_url", cfg.Overpass.URL),
	)

	metrics.Register()

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

	// 3. Connect to Redis. Без Redis API работает без кеша
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, starting in degraded mode", zap.Error(err))
		redisClient = cache.NewRedisLazy(&cfg.Redis, log)
	}

	// 4. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	placeSource := overpass.NewClient(&cfg.Overpass, log)
	fallbackRepo := static.NewFallbackRepository()

	log.Info("Repositories initialized")

	// 5. Initialize use cases
	placeUC := usecase.NewPlaceUseCase(placeSource, fallbackRepo, cacheRepo, log, usecase.PlaceConfig{
		CacheTTL:    cfg.Cache.PlacesCacheTTL,
		FallbackTTL: cfg.Cache.FallbackCacheTTL,
		MaxRetries:  cfg.Cache.MaxRetries,
		RetryDelay:  cfg.Cache.RetryDelay,
	})
	cityUC := usecase.NewCityUseCase()
	refreshUC := usecase.NewRefreshUseCase(streamRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	healthHandler := handler.NewHealthHandler(cacheRepo, log)
	placeHandler := handler.NewPlaceHandler(placeUC, refreshUC, log)
	cityHandler := handler.NewCityHandler(cityUC, placeUC, log)

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, healthHandler, placeHandler, cityHandler)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
