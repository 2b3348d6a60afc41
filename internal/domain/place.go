package domain

import "time"

// PlaceType - классификация места, задается при создании и больше не меняется
type PlaceType string

const (
	PlaceTypeNursing  PlaceType = "nursing"
	PlaceTypeChanging PlaceType = "changing"
	PlaceTypeBoth     PlaceType = "both"
)

// Valid проверяет, что тип входит в допустимый набор
func (t PlaceType) Valid() bool {
	switch t {
	case PlaceTypeNursing, PlaceTypeChanging, PlaceTypeBoth:
		return true
	}
	return false
}

// Label возвращает шведское название типа
func (t PlaceType) Label() string {
	switch t {
	case PlaceTypeNursing:
		return "Amningsrum"
	case PlaceTypeChanging:
		return "Skötrum"
	case PlaceTypeBoth:
		return "Amningsrum & Skötrum"
	}
	return ""
}

// Emoji возвращает значок типа для карточки места
func (t PlaceType) Emoji() string {
	switch t {
	case PlaceTypeNursing:
		return "👶"
	case PlaceTypeChanging:
		return "🚼"
	case PlaceTypeBoth:
		return "👶🚼"
	}
	return ""
}

// Place представляет комнату для кормления и/или пеленальный столик.
// Значение неизменяемо: каждый ответ Overpass строит новый набор.
type Place struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Type         PlaceType `json:"type"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Address      *string   `json:"address,omitempty"`
	CitySlug     string    `json:"city_slug"`
	Accessible   *bool     `json:"accessible,omitempty"`
	OpeningHours *string   `json:"opening_hours,omitempty"`
	Description  *string   `json:"description,omitempty"`

	// OSM ссылка
	OSMType string `json:"osm_type,omitempty"`
	OSMID   *int64 `json:"osm_id,omitempty"`
}

// IsAccessible возвращает true только для явно доступных мест
func (p Place) IsAccessible() bool {
	return p.Accessible != nil && *p.Accessible
}

// PlaceFilter - фильтры списка мест
type PlaceFilter string

const (
	FilterAll        PlaceFilter = "all"
	FilterNursing    PlaceFilter = "nursing"
	FilterChanging   PlaceFilter = "changing"
	FilterAccessible PlaceFilter = "accessible"
)

// PlaceFilters в порядке отображения
var PlaceFilters = []PlaceFilter{FilterAll, FilterNursing, FilterChanging, FilterAccessible}

// Match проверяет, подходит ли место под фильтр.
// Тип both подходит и под nursing, и под changing.
func (f PlaceFilter) Match(p Place) bool {
	switch f {
	case FilterNursing:
		return p.Type == PlaceTypeNursing || p.Type == PlaceTypeBoth
	case FilterChanging:
		return p.Type == PlaceTypeChanging || p.Type == PlaceTypeBoth
	case FilterAccessible:
		return p.IsAccessible()
	default:
		return true
	}
}

// Valid проверяет, что фильтр из списка PlaceFilters
func (f PlaceFilter) Valid() bool {
	switch f {
	case FilterAll, FilterNursing, FilterChanging, FilterAccessible:
		return true
	}
	return false
}

// PlaceSource - откуда пришли данные
type PlaceSource string

const (
	SourceLive     PlaceSource = "live"
	SourceFallback PlaceSource = "fallback"
)

// FallbackReason - почему использован встроенный набор
type FallbackReason string

const (
	FallbackEmpty FallbackReason = "empty"
	FallbackError FallbackReason = "error"
)

// PlacesResult - результат оркестратора
type PlacesResult struct {
	Places         []Place        `json:"places"`
	Source         PlaceSource    `json:"source"`
	FallbackReason FallbackReason `json:"fallback_reason,omitempty"`
	FetchedAt      time.Time      `json:"fetched_at"`
	Cached         bool           `json:"-"`
}
