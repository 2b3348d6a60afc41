package dto

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nursing-locator/internal/domain"
)

const (
	googleDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination=%v,%v"
	osmBaseURL          = "https://www.openstreetmap.org"
)

// PlaceLinks - внешние ссылки места
type PlaceLinks struct {
	Directions string `json:"directions"`
	OSM        string `json:"osm"`
}

// PlaceResponse - место для ответа API
type PlaceResponse struct {
	domain.Place
	TypeLabel string     `json:"type_label"`
	TypeEmoji string     `json:"type_emoji"`
	Links     PlaceLinks `json:"links"`
}

// ToPlaceResponse добавляет к месту подписи типа и ссылки
func ToPlaceResponse(p domain.Place) PlaceResponse {
	return PlaceResponse{
		Place:     p,
		TypeLabel: p.Type.Label(),
		TypeEmoji: p.Type.Emoji(),
		Links:     BuildLinks(p),
	}
}

func ToPlaceResponses(places []domain.Place) []PlaceResponse {
	result := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		result = append(result, ToPlaceResponse(p))
	}
	return result
}

// BuildLinks строит ссылку на маршрут Google Maps и на объект в OpenStreetMap
func BuildLinks(p domain.Place) PlaceLinks {
	links := PlaceLinks{
		Directions: fmt.Sprintf(googleDirectionsURL, p.Lat, p.Lng),
		OSM:        osmBaseURL,
	}
	if p.OSMID != nil {
		osmType := p.OSMType
		if osmType == "" {
			osmType = "node"
		}
		links.OSM = fmt.Sprintf("%s/%s/%d", osmBaseURL, osmType, *p.OSMID)
	}
	return links
}

// PlacesResponse - список мест с итогами по фильтрам
type PlacesResponse struct {
	Places         []PlaceResponse       `json:"places"`
	Total          int                   `json:"total"`
	Source         domain.PlaceSource    `json:"source"`
	FallbackReason domain.FallbackReason `json:"fallback_reason,omitempty"`
	Cached         bool                  `json:"cached"`
	Counts         map[string]int        `json:"counts"`
}

// NearbyPlace - место с расстоянием до точки поиска
type NearbyPlace struct {
	PlaceResponse
	DistanceM     float64 `json:"distance_m"`
	DistanceLabel string  `json:"distance_label"`
}

// NearbyResponse - результат поиска рядом
type NearbyResponse struct {
	Places   []NearbyPlace `json:"places"`
	Total    int           `json:"total"`
	RadiusKm float64       `json:"radius_km"`
	// CitySlug - город, в который попадает точка поиска
	CitySlug string `json:"city_slug"`
}

// CityResponse - город справочника
type CityResponse struct {
	Name   string             `json:"name"`
	Slug   string             `json:"slug"`
	Region string             `json:"region,omitempty"`
	Count  int                `json:"count,omitempty"`
	Center domain.Point       `json:"center"`
	Bounds domain.BoundingBox `json:"bounds"`
}

func ToCityResponse(c domain.City) CityResponse {
	return CityResponse{
		Name:   c.Name,
		Slug:   c.Slug,
		Region: c.Region,
		Count:  c.Count,
		Center: c.Center(),
		Bounds: c.Bounds,
	}
}

// CityPlacesResponse - город и его места
type CityPlacesResponse struct {
	City CityResponse `json:"city"`
	PlacesResponse
}

// RefreshResponse - принятый запрос на обновление
type RefreshResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	CitySlug  string    `json:"city_slug,omitempty"`
	MessageID string    `json:"message_id"`
	Stream    string    `json:"stream"`
}
