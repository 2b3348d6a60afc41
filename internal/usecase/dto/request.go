package dto

// PlacesRequest - запрос списка мест. Неизвестный город не ошибка:
// результат будет пустым или встроенным набором.
type PlacesRequest struct {
	City   string `query:"city" validate:"omitempty,max=64"`
	Filter string `query:"filter" validate:"omitempty,place_filter"`
}

// NearbyRequest - поиск ближайших мест. Координаты и радиус проверяет PlaceUseCase.
type NearbyRequest struct {
	Lat      float64 `query:"lat"`
	Lon      float64 `query:"lon"`
	RadiusKm float64 `query:"radius_km"`
	Limit    int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

// CitySearchRequest - свободный поиск города
type CitySearchRequest struct {
	Query string `query:"q" validate:"required,min=1,max=100"`
}

// RefreshRequest - запрос на обновление кеша мест, пустой город - вся страна
type RefreshRequest struct {
	City string `query:"city" validate:"omitempty,max=64"`
}
