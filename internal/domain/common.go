package domain

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox - прямоугольник south/west/north/east
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// SwedenBounds покрывает всю Швецию
var SwedenBounds = BoundingBox{
	MinLat: 55.0,
	MinLon: 10.5,
	MaxLat: 69.1,
	MaxLon: 24.2,
}

// Contains проверяет попадание точки в прямоугольник (границы включительно)
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Center возвращает середину прямоугольника
func (b BoundingBox) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}
