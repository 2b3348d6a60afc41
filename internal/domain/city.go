package domain

// OtherCitySlug - корзина для мест вне известных городов
const OtherCitySlug = "ovriga"

// City - город с прямоугольником для запросов и определения города по координатам
type City struct {
	Name   string      `json:"name"`
	Slug   string      `json:"slug"`
	Region string      `json:"region,omitempty"`
	Count  int         `json:"count"`
	Bounds BoundingBox `json:"bounds"`

	// display задает центр для карты, если он отличается от середины Bounds
	display *Point
}

// Center возвращает центр города для отображения
func (c City) Center() Point {
	if c.display != nil {
		return *c.display
	}
	return c.Bounds.Center()
}

// Cities - упорядоченный список. Прямоугольники пересекаются,
// при определении города побеждает первый по порядку.
var Cities = []City{
	{Name: "Stockholm", Slug: "stockholm", Region: "Stockholms län", Count: 156,
		Bounds: BoundingBox{MinLat: 59.2, MaxLat: 59.5, MinLon: 17.8, MaxLon: 18.3}, display: &Point{Lat: 59.3293, Lon: 18.0686}},
	{Name: "Göteborg", Slug: "goteborg", Region: "Västra Götalands län", Count: 89,
		Bounds: BoundingBox{MinLat: 57.6, MaxLat: 57.8, MinLon: 11.8, MaxLon: 12.1}, display: &Point{Lat: 57.7089, Lon: 11.9746}},
	{Name: "Malmö", Slug: "malmo", Region: "Skåne län", Count: 67,
		Bounds: BoundingBox{MinLat: 55.5, MaxLat: 55.7, MinLon: 12.9, MaxLon: 13.1}, display: &Point{Lat: 55.6050, Lon: 13.0038}},
	{Name: "Uppsala", Slug: "uppsala", Region: "Uppsala län", Count: 45,
		Bounds: BoundingBox{MinLat: 59.8, MaxLat: 59.9, MinLon: 17.5, MaxLon: 17.7}, display: &Point{Lat: 59.8586, Lon: 17.6389}},
	{Name: "Västerås", Slug: "vasteras", Region: "Västmanlands län", Count: 25,
		Bounds: BoundingBox{MinLat: 59.55, MaxLat: 59.7, MinLon: 16.4, MaxLon: 16.7}, display: &Point{Lat: 59.6099, Lon: 16.5448}},
	{Name: "Örebro", Slug: "orebro", Region: "Örebro län", Count: 28,
		Bounds: BoundingBox{MinLat: 59.2, MaxLat: 59.35, MinLon: 15.1, MaxLon: 15.3}, display: &Point{Lat: 59.2753, Lon: 15.2134}},
	{Name: "Linköping", Slug: "linkoping", Region: "Östergötlands län", Count: 32,
		Bounds: BoundingBox{MinLat: 58.35, MaxLat: 58.45, MinLon: 15.5, MaxLon: 15.7}, display: &Point{Lat: 58.4108, Lon: 15.6214}},
	{Name: "Helsingborg", Slug: "helsingborg", Region: "Skåne län", Count: 22,
		Bounds: BoundingBox{MinLat: 56.0, MaxLat: 56.1, MinLon: 12.65, MaxLon: 12.8}, display: &Point{Lat: 56.0465, Lon: 12.6945}},
	{Name: "Jönköping", Slug: "jonkoping", Region: "Jönköpings län",
		Bounds: BoundingBox{MinLat: 57.75, MaxLat: 57.85, MinLon: 14.1, MaxLon: 14.3}},
	{Name: "Norrköping", Slug: "norrkoping", Region: "Östergötlands län",
		Bounds: BoundingBox{MinLat: 58.55, MaxLat: 58.65, MinLon: 16.1, MaxLon: 16.3}},
	{Name: "Lund", Slug: "lund", Region: "Skåne län",
		Bounds: BoundingBox{MinLat: 55.68, MaxLat: 55.73, MinLon: 13.15, MaxLon: 13.25}},
	{Name: "Umeå", Slug: "umea", Region: "Västerbottens län",
		Bounds: BoundingBox{MinLat: 63.8, MaxLat: 63.85, MinLon: 20.2, MaxLon: 20.35}},
	{Name: "Gävle", Slug: "gavle", Region: "Gävleborgs län",
		Bounds: BoundingBox{MinLat: 60.65, MaxLat: 60.72, MinLon: 17.1, MaxLon: 17.2}},
	{Name: "Borås", Slug: "boras", Region: "Västra Götalands län",
		Bounds: BoundingBox{MinLat: 57.7, MaxLat: 57.75, MinLon: 12.9, MaxLon: 13.0}},
	{Name: "Sundsvall", Slug: "sundsvall", Region: "Västernorrlands län",
		Bounds: BoundingBox{MinLat: 62.35, MaxLat: 62.45, MinLon: 17.25, MaxLon: 17.4}},
}

// ResolveCity возвращает slug первого города, в прямоугольник которого попадает точка.
// Если ни один не подошел - OtherCitySlug.
func ResolveCity(lat, lon float64) string {
	for _, city := range Cities {
		if city.Bounds.Contains(lat, lon) {
			return city.Slug
		}
	}
	return OtherCitySlug
}

// CityBySlug ищет город по slug
func CityBySlug(slug string) (City, bool) {
	for _, city := range Cities {
		if city.Slug == slug {
			return city, true
		}
	}
	return City{}, false
}

// CityBounds возвращает прямоугольник для запроса: города или всей Швеции
func CityBounds(slug string) BoundingBox {
	if city, ok := CityBySlug(slug); ok {
		return city.Bounds
	}
	return SwedenBounds
}
