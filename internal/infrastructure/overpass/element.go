package overpass

// Element - элемент ответа Overpass: node с координатами или way с center
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Center - вычисленный центр для way (out center)
type Center struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// Response - тело ответа Overpass с [out:json]
type Response struct {
	Elements []Element `json:"elements"`
}

const (
	ElementNode = "node"
	ElementWay  = "way"
)

// Coordinates возвращает координаты элемента, 0 если их нет
func (e Element) Coordinates() (lat, lon float64) {
	switch e.Type {
	case ElementNode:
		return deref(e.Lat), deref(e.Lon)
	case ElementWay:
		if e.Center != nil {
			return deref(e.Center.Lat), deref(e.Center.Lon)
		}
	}
	return 0, 0
}

// HasCoordinates - годится ли элемент для нормализации.
// Нулевая координата считается отсутствующей, relation отбрасывается.
func (e Element) HasCoordinates() bool {
	switch e.Type {
	case ElementNode:
		return deref(e.Lat) != 0 && deref(e.Lon) != 0
	case ElementWay:
		return e.Center != nil && deref(e.Center.Lat) != 0 && deref(e.Center.Lon) != 0
	}
	return false
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
