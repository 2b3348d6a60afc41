package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nursing-locator/internal/pkg/utils"
	"github.com/nursing-locator/internal/pkg/validator"
	"github.com/nursing-locator/internal/usecase"
	"github.com/nursing-locator/internal/usecase/dto"
	"go.uber.org/zap"
)

// CityHandler - справочник городов и места города
type CityHandler struct {
	cityUC  *usecase.CityUseCase
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewCityHandler - создание нового CityHandler
func NewCityHandler(cityUC *usecase.CityUseCase, placeUC *usecase.PlaceUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC:  cityUC,
		placeUC: placeUC,
		logger:  logger,
	}
}

// ListCities godoc
// @Summary Список городов
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Router /api/v1/cities [get]
func (h *CityHandler) ListCities(c *fiber.Ctx) error {
	cities := h.cityUC.ListCities()
	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// SearchCities godoc
// @Summary Поиск города
// @Description Поиск по названию без учета регистра и диакритики (malmo найдет Malmö)
// @Tags Cities
// @Produce json
// @Param q query string true "Запрос"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/cities/search [get]
func (h *CityHandler) SearchCities(c *fiber.Ctx) error {
	req := dto.CitySearchRequest{Query: c.Query("q")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	cities := h.cityUC.SearchCity(req.Query)
	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// GetCity godoc
// @Summary Город по slug
// @Tags Cities
// @Produce json
// @Param slug path string true "Slug города"
// @Success 200 {object} utils.SuccessResponse{data=dto.CityResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{slug} [get]
func (h *CityHandler) GetCity(c *fiber.Ctx) error {
	city, err := h.cityUC.GetCity(c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, city, nil)
}

// GetCityPlaces godoc
// @Summary Места города
// @Description Город и его места. Неизвестный город - 404.
// @Tags Cities
// @Produce json
// @Param slug path string true "Slug города"
// @Param filter query string false "Фильтр: all, nursing, changing, accessible" default(all)
// @Success 200 {object} utils.SuccessResponse{data=dto.CityPlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{slug}/places [get]
func (h *CityHandler) GetCityPlaces(c *fiber.Ctx) error {
	city, err := h.cityUC.GetCity(c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}

	filter, err := parseFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	places, err := h.placeUC.ListPlaces(c.UserContext(), city.Slug, filter)
	if err != nil {
		h.logger.Error("Failed to load city places", zap.String("city", city.Slug), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.CityPlacesResponse{
		City:           *city,
		PlacesResponse: *places,
	}, placesMeta(places))
}
