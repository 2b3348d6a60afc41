package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nursing-locator/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total          int            `json:"total"`
	Source         string         `json:"source,omitempty"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
	Cached         bool           `json:"cached,omitempty"`
	Counts         map[string]int `json:"counts,omitempty"`
	TimeMSec       float64        `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
