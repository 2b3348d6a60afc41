package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/pkg/errors"
)

// parseFilter читает ?filter=, пустое значение означает all
func parseFilter(c *fiber.Ctx) (domain.PlaceFilter, error) {
	raw := c.Query("filter")
	if raw == "" {
		return domain.FilterAll, nil
	}
	filter := domain.PlaceFilter(raw)
	if !filter.Valid() {
		return "", errors.ErrInvalidFilter.WithDetails(map[string]interface{}{"filter": raw})
	}
	return filter, nil
}

// queryFloat читает обязательный float параметр
func queryFloat(c *fiber.Ctx, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
