package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const placesKeyPrefix = "places:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// PlacesKey возвращает ключ кеша: places:<city> или places:all
func PlacesKey(citySlug string) string {
	if citySlug == "" {
		return placesKeyPrefix + "all"
	}
	return placesKeyPrefix + citySlug
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetPlaces получает результат оркестратора из кеша
func (r *cacheRepository) GetPlaces(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	data, err := r.Get(ctx, PlacesKey(citySlug))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var result domain.PlacesResult
	if err := json.Unmarshal(data, &result); err != nil {
		r.logger.Error("Failed to unmarshal places from cache",
			zap.String("city", citySlug), zap.Error(err))
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}

	return &result, nil
}

// SetPlaces сохраняет результат оркестратора в кеше
func (r *cacheRepository) SetPlaces(ctx context.Context, citySlug string, result *domain.PlacesResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Error("Failed to marshal places", zap.Error(err))
		return fmt.Errorf("marshal places: %w", err)
	}

	return r.Set(ctx, PlacesKey(citySlug), data, ttl)
}

func (r *cacheRepository) DeletePlaces(ctx context.Context, citySlug string) error {
	return r.Delete(ctx, PlacesKey(citySlug))
}

func (r *cacheRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
