package overpass

import (
	"testing"

	"github.com/nursing-locator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(f float64) *float64 { return &f }

func TestClassifyTags(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want domain.PlaceType
	}{
		{name: "baby_care alone", tags: map[string]string{"amenity": "baby_care"}, want: domain.PlaceTypeBoth},
		{name: "baby_care overrides nursing", tags: map[string]string{"amenity": "baby_care", "nursing_room": "yes"}, want: domain.PlaceTypeBoth},
		{name: "baby_care with changing_table=no", tags: map[string]string{"amenity": "baby_care", "changing_table": "no"}, want: domain.PlaceTypeBoth},
		{name: "nursing_room only", tags: map[string]string{"nursing_room": "yes"}, want: domain.PlaceTypeNursing},
		{name: "baby_feeding only", tags: map[string]string{"baby_feeding": "yes"}, want: domain.PlaceTypeNursing},
		{name: "amenity nursing_room", tags: map[string]string{"amenity": "nursing_room"}, want: domain.PlaceTypeNursing},
		{name: "nursing and changing", tags: map[string]string{"nursing_room": "yes", "changing_table": "yes"}, want: domain.PlaceTypeBoth},
		{name: "nursing and diaper", tags: map[string]string{"baby_feeding": "yes", "diaper": "yes"}, want: domain.PlaceTypeBoth},
		{name: "changing_table key with any value counts", tags: map[string]string{"nursing_room": "yes", "changing_table": "no"}, want: domain.PlaceTypeBoth},
		{name: "changing table", tags: map[string]string{"changing_table": "yes"}, want: domain.PlaceTypeChanging},
		{name: "baby_feeding=no is not nursing", tags: map[string]string{"baby_feeding": "no"}, want: domain.PlaceTypeChanging},
		{name: "no signals", tags: map[string]string{"amenity": "cafe"}, want: domain.PlaceTypeChanging},
		{name: "nil tags", tags: nil, want: domain.PlaceTypeChanging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTags(tt.tags))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		tags     map[string]string
		typ      domain.PlaceType
		expected string
	}{
		{name: "explicit name wins", tags: map[string]string{"name": "Test Room", "brand": "IKEA"}, typ: domain.PlaceTypeChanging, expected: "Test Room"},
		{name: "nursing base", tags: map[string]string{}, typ: domain.PlaceTypeNursing, expected: "Amningsrum"},
		{name: "changing base", tags: map[string]string{}, typ: domain.PlaceTypeChanging, expected: "Skötrum"},
		{name: "both base", tags: map[string]string{}, typ: domain.PlaceTypeBoth, expected: "Amnings- och skötrum"},
		{name: "brand", tags: map[string]string{"brand": "IKEA", "location": "mall"}, typ: domain.PlaceTypeChanging, expected: "Skötrum – IKEA"},
		{name: "operator", tags: map[string]string{"operator": "SJ"}, typ: domain.PlaceTypeNursing, expected: "Amningsrum – SJ"},
		{name: "brand before operator", tags: map[string]string{"brand": "IKEA", "operator": "Ingka"}, typ: domain.PlaceTypeChanging, expected: "Skötrum – IKEA"},
		{name: "known location", tags: map[string]string{"location": "train_station"}, typ: domain.PlaceTypeChanging, expected: "Skötrum – tågstation"},
		{name: "changing_table location first", tags: map[string]string{"changing_table:location": "mall", "location": "shop"}, typ: domain.PlaceTypeBoth, expected: "Amnings- och skötrum – köpcentrum"},
		{name: "unknown location verbatim", tags: map[string]string{"location": "wheelchair_toilet"}, typ: domain.PlaceTypeChanging, expected: "Skötrum – wheelchair_toilet"},
		{name: "toilets", tags: map[string]string{"amenity": "toilets", "changing_table": "yes"}, typ: domain.PlaceTypeChanging, expected: "Skötrum – toalett"},
		{name: "location before toilets", tags: map[string]string{"amenity": "toilets", "location": "restaurant"}, typ: domain.PlaceTypeChanging, expected: "Skötrum – restaurang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.tags, tt.typ))
		})
	}
}

func TestAddress(t *testing.T) {
	t.Run("structured parts", func(t *testing.T) {
		addr := Address(map[string]string{
			"addr:street":      "Hamngatan",
			"addr:housenumber": "18",
			"addr:postcode":    "111 47",
			"addr:city":        "Stockholm",
			"address":          "ignored",
		})
		require.NotNil(t, addr)
		assert.Equal(t, "Hamngatan 18 111 47 Stockholm", *addr)
	})

	t.Run("partial parts skip empty", func(t *testing.T) {
		addr := Address(map[string]string{"addr:street": "Drottninggatan", "addr:housenumber": "", "addr:city": "Stockholm"})
		require.NotNil(t, addr)
		assert.Equal(t, "Drottninggatan Stockholm", *addr)
	})

	t.Run("raw address fallback", func(t *testing.T) {
		addr := Address(map[string]string{"address": "Centralplan 15"})
		require.NotNil(t, addr)
		assert.Equal(t, "Centralplan 15", *addr)
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, Address(map[string]string{}))
	})
}

func TestElementToPlace_RoundTrip(t *testing.T) {
	e := Element{
		Type: ElementNode,
		ID:   42,
		Lat:  fp(59.33),
		Lon:  fp(18.06),
		Tags: map[string]string{"changing_table": "yes", "name": "Test Room"},
	}

	place := ElementToPlace(e)

	assert.Equal(t, "osm-42", place.ID)
	assert.Equal(t, domain.PlaceTypeChanging, place.Type)
	assert.Equal(t, "Test Room", place.Name)
	assert.Equal(t, "test-room-42", place.Slug)
	assert.Equal(t, "stockholm", place.CitySlug)
	assert.Equal(t, 59.33, place.Lat)
	assert.Equal(t, 18.06, place.Lng)
	assert.Equal(t, "node", place.OSMType)
	require.NotNil(t, place.OSMID)
	assert.Equal(t, int64(42), *place.OSMID)
	require.NotNil(t, place.Accessible)
	assert.False(t, *place.Accessible)
	assert.Nil(t, place.Address)
	assert.Nil(t, place.OpeningHours)
	assert.Nil(t, place.Description)
}

func TestElementToPlace_Idempotent(t *testing.T) {
	e := Element{
		Type:   ElementWay,
		ID:     7,
		Center: &Center{Lat: fp(57.7), Lon: fp(11.97)},
		Tags: map[string]string{
			"amenity":       "baby_care",
			"wheelchair":    "limited",
			"opening_hours": "Mo-Fr 10:00-20:00",
			"note":          "Andra våningen",
		},
	}

	first := ElementToPlace(e)
	second := ElementToPlace(e)
	assert.Equal(t, first, second)

	assert.Equal(t, domain.PlaceTypeBoth, first.Type)
	assert.Equal(t, "Amnings- och skötrum", first.Name)
	assert.Equal(t, "amnings-och-skotrum-7", first.Slug)
	assert.Equal(t, "goteborg", first.CitySlug)
	assert.True(t, first.IsAccessible())
	require.NotNil(t, first.OpeningHours)
	assert.Equal(t, "Mo-Fr 10:00-20:00", *first.OpeningHours)
	require.NotNil(t, first.Description)
	assert.Equal(t, "Andra våningen", *first.Description)
	assert.Equal(t, "way", first.OSMType)
}

func TestElementToPlace_DescriptionPrefersDescription(t *testing.T) {
	place := ElementToPlace(Element{
		Type: ElementNode, ID: 1, Lat: fp(55.6), Lon: fp(13.0),
		Tags: map[string]string{"description": "Skötbord", "note": "ignored"},
	})
	require.NotNil(t, place.Description)
	assert.Equal(t, "Skötbord", *place.Description)
	assert.Equal(t, "malmo", place.CitySlug)
}

func TestElementToPlace_WayWithoutCenter(t *testing.T) {
	place := ElementToPlace(Element{Type: ElementWay, ID: 9, Tags: map[string]string{"diaper": "yes"}})

	assert.Equal(t, 0.0, place.Lat)
	assert.Equal(t, 0.0, place.Lng)
	assert.Equal(t, domain.OtherCitySlug, place.CitySlug)
	assert.Equal(t, domain.PlaceTypeChanging, place.Type)
}

func TestElementsToPlaces_FiltersMissingCoordinates(t *testing.T) {
	elements := []Element{
		{Type: ElementNode, ID: 1, Lat: fp(59.33), Lon: fp(18.06)},
		{Type: ElementNode, ID: 2, Lat: fp(59.33)},
		{Type: ElementNode, ID: 3, Lat: fp(0), Lon: fp(18.06)},
		{Type: ElementWay, ID: 4},
		{Type: ElementWay, ID: 5, Center: &Center{Lat: fp(57.7)}},
		{Type: ElementWay, ID: 6, Center: &Center{Lat: fp(57.7), Lon: fp(11.97)}},
		{Type: "relation", ID: 7, Lat: fp(59.33), Lon: fp(18.06)},
	}

	places := ElementsToPlaces(elements)

	require.Len(t, places, 2)
	assert.Equal(t, "osm-1", places[0].ID)
	assert.Equal(t, "osm-6", places[1].ID)
}
