package repository

import (
	"context"

	"github.com/nursing-locator/internal/domain"
)

// PlaceSource - внешний источник мест (Overpass API)
type PlaceSource interface {
	// FetchPlaces возвращает нормализованные места в прямоугольнике, nil - вся Швеция
	FetchPlaces(ctx context.Context, bbox *domain.BoundingBox) ([]domain.Place, error)
}

// FallbackSource - встроенный набор мест на случай пустого ответа или ошибки
type FallbackSource interface {
	// Places возвращает встроенные места, пустой citySlug - все
	Places(citySlug string) []domain.Place
}
