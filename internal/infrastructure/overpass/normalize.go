package overpass

import (
	"fmt"
	"strings"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/pkg/utils"
)

const nameSeparator = " – "

// locationNouns - шведские названия для значений location
var locationNouns = map[string]string{
	"mall":             "köpcentrum",
	"shop":             "butik",
	"airport":          "flygplats",
	"train_station":    "tågstation",
	"restaurant":       "restaurang",
	"supermarket":      "matbutik",
	"department_store": "varuhus",
}

// ClassifyTags определяет тип места по тегам OSM.
// Без признаков кормления и пеленания результат - changing.
func ClassifyTags(tags map[string]string) domain.PlaceType {
	hasNursing := tags["baby_feeding"] == "yes" ||
		tags["nursing_room"] == "yes" ||
		tags["amenity"] == "nursing_room"

	_, hasChangingKey := tags["changing_table"]
	hasChanging := hasChangingKey || tags["diaper"] == "yes"

	isBabyCare := tags["amenity"] == "baby_care"

	switch {
	case isBabyCare || (hasNursing && hasChanging):
		return domain.PlaceTypeBoth
	case hasNursing:
		return domain.PlaceTypeNursing
	default:
		return domain.PlaceTypeChanging
	}
}

// BaseName возвращает название по умолчанию для типа
func BaseName(t domain.PlaceType) string {
	switch t {
	case domain.PlaceTypeNursing:
		return "Amningsrum"
	case domain.PlaceTypeBoth:
		return "Amnings- och skötrum"
	default:
		return "Skötrum"
	}
}

// DisplayName выбирает название: тег name, иначе базовое название с уточнением
// по brand/operator, location или amenity=toilets.
func DisplayName(tags map[string]string, t domain.PlaceType) string {
	if name := tags["name"]; name != "" {
		return name
	}

	base := BaseName(t)

	if brand := firstNonEmpty(tags["brand"], tags["operator"]); brand != "" {
		return base + nameSeparator + brand
	}

	if location := firstNonEmpty(tags["changing_table:location"], tags["location"]); location != "" {
		if noun, ok := locationNouns[location]; ok {
			return base + nameSeparator + noun
		}
		return base + nameSeparator + location
	}

	if tags["amenity"] == "toilets" {
		return base + nameSeparator + "toalett"
	}

	return base
}

// Address собирает адрес из addr:* тегов, иначе берет тег address
func Address(tags map[string]string) *string {
	parts := make([]string, 0, 4)
	for _, key := range []string{"addr:street", "addr:housenumber", "addr:postcode", "addr:city"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}

	if len(parts) > 0 {
		addr := strings.Join(parts, " ")
		return &addr
	}
	return optional(tags["address"])
}

// ElementToPlace преобразует элемент Overpass в Place. Чистая функция:
// отсутствующие данные дают значения по умолчанию, ошибок нет.
func ElementToPlace(e Element) domain.Place {
	lat, lon := e.Coordinates()

	tags := e.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	placeType := ClassifyTags(tags)
	name := DisplayName(tags, placeType)

	accessible := tags["wheelchair"] == "yes" || tags["wheelchair"] == "limited"
	osmID := e.ID

	return domain.Place{
		ID:           fmt.Sprintf("osm-%d", e.ID),
		Name:         name,
		Slug:         utils.GenerateSlug(name, e.ID),
		Type:         placeType,
		Lat:          lat,
		Lng:          lon,
		Address:      Address(tags),
		CitySlug:     domain.ResolveCity(lat, lon),
		Accessible:   &accessible,
		OpeningHours: optional(tags["opening_hours"]),
		Description:  optional(firstNonEmpty(tags["description"], tags["note"])),
		OSMType:      e.Type,
		OSMID:        &osmID,
	}
}

// ElementsToPlaces отбрасывает элементы без координат и нормализует остальные
func ElementsToPlaces(elements []Element) []domain.Place {
	places := make([]domain.Place, 0, len(elements))
	for _, e := range elements {
		if !e.HasCoordinates() {
			continue
		}
		places = append(places, ElementToPlace(e))
	}
	return places
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
