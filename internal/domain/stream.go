package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamPlacesRefresh   = "stream:places:refresh"
	StreamPlacesRefreshed = "stream:places:refreshed"
)

// PlacesRefreshEvent - входящий запрос на обновление кеша мест.
// Пустой CitySlug означает всю страну.
type PlacesRefreshEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	CitySlug    string    `json:"city_slug,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// CacheKey возвращает ключ города для кеша ("all" для всей страны)
func (e *PlacesRefreshEvent) CacheKey() string {
	if e.CitySlug == "" {
		return "all"
	}
	return e.CitySlug
}

// PlacesRefreshedEvent - результат обновления
type PlacesRefreshedEvent struct {
	RequestID      uuid.UUID      `json:"request_id"`
	CitySlug       string         `json:"city_slug,omitempty"`
	Source         PlaceSource    `json:"source,omitempty"`
	FallbackReason FallbackReason `json:"fallback_reason,omitempty"`
	Count          int            `json:"count"`
	RefreshedAt    time.Time      `json:"refreshed_at"`
	Error          string         `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
