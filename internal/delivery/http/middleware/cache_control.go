package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CacheControl выставляет публичное кеширование для успешных GET ответов
func CacheControl(maxAge time.Duration) fiber.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil && c.Method() == fiber.MethodGet && c.Response().StatusCode() == fiber.StatusOK {
			c.Set(fiber.HeaderCacheControl, value)
		}
		return err
	}
}
