package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nursing-locator/internal/domain"
)

// DefaultQueryTimeout - серверный таймаут Overpass в секундах
const DefaultQueryTimeout = 60

// tagFilters - комбинации тегов, каждая запрашивается для node и way
var tagFilters = []string{
	// Changing tables
	`["changing_table"="yes"]`,
	`["diaper"="yes"]`,
	// Nursing rooms
	`["baby_feeding"="yes"]`,
	`["nursing_room"="yes"]`,
	`["amenity"="nursing_room"]`,
	// Baby care rooms
	`["amenity"="baby_care"]`,
	// Toilets with changing tables
	`["amenity"="toilets"]["changing_table"]`,
}

// BuildQuery строит Overpass QL запрос для прямоугольника.
// nil означает всю Швецию. timeoutSec <= 0 заменяется на DefaultQueryTimeout.
func BuildQuery(bbox *domain.BoundingBox, timeoutSec int) string {
	box := domain.SwedenBounds
	if bbox != nil {
		box = *bbox
	}
	if timeoutSec <= 0 {
		timeoutSec = DefaultQueryTimeout
	}

	bboxStr := FormatBBox(box)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", timeoutSec)
	for _, filter := range tagFilters {
		for _, kind := range []string{ElementNode, ElementWay} {
			fmt.Fprintf(&b, "  %s%s(%s);\n", kind, filter, bboxStr)
		}
	}
	b.WriteString(");\nout center;")

	return b.String()
}

// FormatBBox форматирует прямоугольник в порядке south,west,north,east
func FormatBBox(b domain.BoundingBox) string {
	return fmt.Sprintf("%s,%s,%s,%s",
		formatCoord(b.MinLat), formatCoord(b.MinLon),
		formatCoord(b.MaxLat), formatCoord(b.MaxLon))
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
