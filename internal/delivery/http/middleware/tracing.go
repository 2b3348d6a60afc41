package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"github.com/nursing-locator/internal/pkg/tracing"
)

// headerCarrier адаптирует заголовки fasthttp к propagation.TextMapCarrier
type headerCarrier struct {
	header *fasthttp.RequestHeader
}

func (h headerCarrier) Get(key string) string {
	return string(h.header.Peek(key))
}

func (h headerCarrier) Set(key, value string) {
	h.header.Set(key, value)
}

func (h headerCarrier) Keys() []string {
	keys := make([]string, 0, h.header.Len())
	h.header.VisitAll(func(key, _ []byte) {
		keys = append(keys, string(key))
	})
	return keys
}

var _ propagation.TextMapCarrier = headerCarrier{}

// Tracing открывает серверный спан на запрос и кладет его контекст в UserContext
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), headerCarrier{header: &c.Request().Header})

		ctx, span := tracing.StartSpan(ctx, "HTTP "+c.Method(),
			attribute.String("http.method", c.Method()),
			attribute.String("http.target", c.Path()))
		defer span.End()

		if id, ok := c.Locals("request_id").(string); ok {
			span.SetAttributes(attribute.String("request.id", id))
		}

		c.SetUserContext(ctx)
		err := c.Next()

		// маршрут известен только после роутинга
		span.SetName("HTTP " + c.Method() + " " + c.Route().Path)
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		switch {
		case err != nil && status >= fiber.StatusInternalServerError:
			tracing.RecordError(span, err)
		case status >= fiber.StatusInternalServerError:
			span.SetStatus(codes.Error, fiber.ErrInternalServerError.Message)
		}

		return err
	}
}
