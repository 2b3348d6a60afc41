package usecase

import (
	"sort"
	"strings"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/pkg/errors"
	"github.com/nursing-locator/internal/pkg/utils"
	"github.com/nursing-locator/internal/usecase/dto"
)

// CityUseCase - справочник городов и свободный поиск города
type CityUseCase struct{}

func NewCityUseCase() *CityUseCase {
	return &CityUseCase{}
}

// ListCities возвращает все известные города в порядке справочника
func (uc *CityUseCase) ListCities() []dto.CityResponse {
	result := make([]dto.CityResponse, 0, len(domain.Cities))
	for _, c := range domain.Cities {
		result = append(result, dto.ToCityResponse(c))
	}
	return result
}

// GetCity возвращает город по slug
func (uc *CityUseCase) GetCity(slug string) (*dto.CityResponse, error) {
	city, ok := domain.CityBySlug(slug)
	if !ok {
		return nil, errors.ErrCityNotFound
	}
	resp := dto.ToCityResponse(city)
	return &resp, nil
}

// SearchCity ищет города по названию или slug без учета регистра и диакритики.
// Точные совпадения идут первыми, затем совпадения по началу, затем по подстроке.
func (uc *CityUseCase) SearchCity(query string) []dto.CityResponse {
	q := utils.FoldAccents(query)
	if q == "" {
		return []dto.CityResponse{}
	}

	type match struct {
		city domain.City
		rank int
	}

	var matches []match
	for _, c := range domain.Cities {
		name := utils.FoldAccents(c.Name)
		switch {
		case name == q || c.Slug == q:
			matches = append(matches, match{c, 0})
		case strings.HasPrefix(name, q) || strings.HasPrefix(c.Slug, q):
			matches = append(matches, match{c, 1})
		case strings.Contains(name, q):
			matches = append(matches, match{c, 2})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	result := make([]dto.CityResponse, 0, len(matches))
	for _, m := range matches {
		result = append(result, dto.ToCityResponse(m.city))
	}
	return result
}
