package static

import (
	"strconv"
	"strings"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/domain/repository"
)

type fallbackRecord struct {
	id           string
	name         string
	slug         string
	placeType    domain.PlaceType
	lat, lng     float64
	address      string
	citySlug     string
	accessible   bool
	openingHours string
	description  string
	osmRef       string
}

// records - встроенный набор, который отдается при пустом ответе Overpass или ошибке
var records = []fallbackRecord{
	{
		id: "1", name: "Mall of Scandinavia", slug: "skotrum-stockholm-mall-of-scandinavia",
		placeType: domain.PlaceTypeBoth, lat: 59.3700, lng: 18.0040,
		address: "Stjärntorget 2, 169 79 Solna", citySlug: "stockholm", accessible: true,
		openingHours: "10:00-21:00",
		description:  "Rymligt skötrum med amningshörna. Mikrovågsugn finns tillgänglig.",
		osmRef:       "node/123456789",
	},
	{
		id: "2", name: "NK Stockholm", slug: "amningsrum-stockholm-nk",
		placeType: domain.PlaceTypeBoth, lat: 59.3333, lng: 18.0712,
		address: "Hamngatan 18-20, 111 47 Stockholm", citySlug: "stockholm", accessible: true,
		openingHours: "10:00-20:00",
		description:  "Lyxigt familjerum med bekväma sittplatser.",
		osmRef:       "node/234567890",
	},
	{
		id: "3", name: "Centralstationen", slug: "skotrum-stockholm-centralstationen",
		placeType: domain.PlaceTypeChanging, lat: 59.3307, lng: 18.0573,
		address: "Centralplan 15, 111 20 Stockholm", citySlug: "stockholm", accessible: true,
		openingHours: "Dygnet runt",
		osmRef:       "node/345678901",
	},
	{
		id: "4", name: "Nordstan", slug: "skotrum-goteborg-nordstan",
		placeType: domain.PlaceTypeBoth, lat: 57.7077, lng: 11.9693,
		address: "Nordstadstorget, 411 05 Göteborg", citySlug: "goteborg", accessible: true,
		openingHours: "10:00-20:00",
		description:  "Stort familjerum med flera skötbord.",
		osmRef:       "node/456789012",
	},
	{
		id: "5", name: "Emporia", slug: "amningsrum-malmo-emporia",
		placeType: domain.PlaceTypeBoth, lat: 55.5608, lng: 12.9748,
		address: "Hyllie Boulevard 19, 215 32 Malmö", citySlug: "malmo", accessible: true,
		openingHours: "10:00-21:00",
		description:  "Modern familjelounge med amningsrum och skötrum.",
		osmRef:       "node/567890123",
	},
	{
		id: "6", name: "Uppsala Resecentrum", slug: "skotrum-uppsala-resecentrum",
		placeType: domain.PlaceTypeChanging, lat: 59.8582, lng: 17.6470,
		address: "Stationsgatan 12, 753 40 Uppsala", citySlug: "uppsala", accessible: true,
		openingHours: "05:00-00:00",
		osmRef:       "node/678901234",
	},
	{
		id: "7", name: "Galleria Boulevard", slug: "amningsrum-vasteras-galleria-boulevard",
		placeType: domain.PlaceTypeNursing, lat: 59.6162, lng: 16.5501,
		address: "Vasagatan 18, 722 15 Västerås", citySlug: "vasteras", accessible: true,
		openingHours: "10:00-19:00",
		description:  "Lugn amningshörna med bekväma fåtöljer.",
		osmRef:       "node/789012345",
	},
	{
		id: "8", name: "Väla Centrum", slug: "skotrum-helsingborg-vala-centrum",
		placeType: domain.PlaceTypeBoth, lat: 56.0802, lng: 12.7539,
		address: "Marknadsvägen 9, 260 35 Ödåkra", citySlug: "helsingborg", accessible: true,
		openingHours: "10:00-20:00",
		description:  "Familjevänligt skötrum nära lekplats.",
		osmRef:       "node/890123456",
	},
}

type fallbackRepository struct{}

// NewFallbackRepository возвращает встроенный набор мест
func NewFallbackRepository() repository.FallbackSource {
	return fallbackRepository{}
}

// Places возвращает новую копию набора, отфильтрованную по городу
func (fallbackRepository) Places(citySlug string) []domain.Place {
	places := make([]domain.Place, 0, len(records))
	for _, r := range records {
		if citySlug != "" && r.citySlug != citySlug {
			continue
		}
		places = append(places, r.toPlace())
	}
	return places
}

func (r fallbackRecord) toPlace() domain.Place {
	accessible := r.accessible
	p := domain.Place{
		ID:           r.id,
		Name:         r.name,
		Slug:         r.slug,
		Type:         r.placeType,
		Lat:          r.lat,
		Lng:          r.lng,
		CitySlug:     r.citySlug,
		Accessible:   &accessible,
		Address:      optional(r.address),
		OpeningHours: optional(r.openingHours),
		Description:  optional(r.description),
	}
	p.OSMType, p.OSMID = parseOSMRef(r.osmRef)
	return p
}

// parseOSMRef разбирает ссылку вида "node/123"
func parseOSMRef(ref string) (string, *int64) {
	kind, idStr, ok := strings.Cut(ref, "/")
	if !ok {
		return "", nil
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return "", nil
	}
	return kind, &id
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
