package repository

import (
	"context"
	"time"

	"github.com/nursing-locator/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil если ключа нет
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetPlaces получает результат для города ("" - вся страна), nil если его нет
	GetPlaces(ctx context.Context, citySlug string) (*domain.PlacesResult, error)

	// SetPlaces сохраняет результат для города
	SetPlaces(ctx context.Context, citySlug string, result *domain.PlacesResult, ttl time.Duration) error

	// DeletePlaces удаляет результат для города
	DeletePlaces(ctx context.Context, citySlug string) error

	// Ping проверяет соединение
	Ping(ctx context.Context) error
}
