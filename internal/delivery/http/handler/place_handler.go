package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nursing-locator/internal/pkg/errors"
	"github.com/nursing-locator/internal/pkg/utils"
	"github.com/nursing-locator/internal/pkg/validator"
	"github.com/nursing-locator/internal/usecase"
	"github.com/nursing-locator/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик запросов мест
type PlaceHandler struct {
	placeUC   *usecase.PlaceUseCase
	refreshUC *usecase.RefreshUseCase
	logger    *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, refreshUC *usecase.RefreshUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC:   placeUC,
		refreshUC: refreshUC,
		logger:    logger,
	}
}

// ListPlaces godoc
// @Summary Список мест
// @Description Комнаты для кормления и пеленальные столики. Без города возвращается вся Швеция. Если Overpass недоступен или ничего не нашел, отдается встроенный набор (source=fallback).
// @Tags Places
// @Produce json
// @Param city query string false "Slug города (stockholm, goteborg, ...)"
// @Param filter query string false "Фильтр: all, nursing, changing, accessible" default(all)
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *PlaceHandler) ListPlaces(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	req := dto.PlacesRequest{
		City:   c.Query("city"),
		Filter: string(filter),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.ListPlaces(c.UserContext(), req.City, filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, placesMeta(result))
}

// GetPlace godoc
// @Summary Место по slug
// @Tags Places
// @Produce json
// @Param slug path string true "Slug места"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{slug} [get]
func (h *PlaceHandler) GetPlace(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.SendError(c, errors.ErrPlaceNotFound)
	}

	place, err := h.placeUC.GetPlaceBySlug(c.UserContext(), slug)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ToPlaceResponse(*place), nil)
}

// Nearby godoc
// @Summary Места рядом с точкой
// @Description Ближайшие места в радиусе, отсортированные по расстоянию
// @Tags Places
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param radius_km query number false "Радиус в км" default(5)
// @Param limit query int false "Максимум результатов" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places/nearby [get]
func (h *PlaceHandler) Nearby(c *fiber.Ctx) error {
	lat, okLat := queryFloat(c, "lat")
	lon, okLon := queryFloat(c, "lon")
	if !okLat || !okLon {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.NearbyRequest{
		Lat:   lat,
		Lon:   lon,
		Limit: c.QueryInt("limit", 0),
	}
	if radius, ok := queryFloat(c, "radius_km"); ok {
		req.RadiusKm = radius
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.Nearby(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// RequestRefresh godoc
// @Summary Запросить обновление кеша
// @Description Публикует запрос в stream:places:refresh, обновление выполняет воркер
// @Tags Places
// @Produce json
// @Param city query string false "Slug города, без него обновляется вся страна"
// @Success 202 {object} utils.SuccessResponse{data=dto.RefreshResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/refresh [post]
func (h *PlaceHandler) RequestRefresh(c *fiber.Ctx) error {
	req := dto.RefreshRequest{City: c.Query("city")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.refreshUC.RequestRefresh(c.UserContext(), req.City)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusAccepted)
	return utils.SendSuccess(c, result, nil)
}

func placesMeta(result *dto.PlacesResponse) *utils.Meta {
	return &utils.Meta{
		Total:          result.Total,
		Source:         string(result.Source),
		FallbackReason: string(result.FallbackReason),
		Cached:         result.Cached,
		Counts:         result.Counts,
	}
}
