package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/nursing-locator/internal/config"
	"github.com/nursing-locator/internal/delivery/http/handler"
	"github.com/nursing-locator/internal/delivery/http/middleware"
	"github.com/nursing-locator/internal/pkg/errors"
	"github.com/nursing-locator/internal/pkg/metrics"
	"github.com/nursing-locator/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// listingMaxAge - Cache-Control для списков мест и городов
const listingMaxAge = time.Hour

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	healthHandler *handler.HealthHandler
	placeHandler  *handler.PlaceHandler
	cityHandler   *handler.CityHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	placeHandler *handler.PlaceHandler,
	cityHandler *handler.CityHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Nursing Locator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Overpass.RequestTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		healthHandler: healthHandler,
		placeHandler:  placeHandler,
		cityHandler:   cityHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает fiber.App, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Tracing())
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(etag.New(etag.Config{Weak: true}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", metrics.Handler())

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	cached := middleware.CacheControl(listingMaxAge)

	// Places. nearby и refresh регистрируются до :slug
	places := api.Group("/places")
	places.Get("/", cached, s.placeHandler.ListPlaces)
	places.Get("/nearby", s.placeHandler.Nearby)
	places.Post("/refresh", s.placeHandler.RequestRefresh)
	places.Get("/:slug", s.placeHandler.GetPlace)

	// Cities
	cities := api.Group("/cities")
	cities.Get("/", cached, s.cityHandler.ListCities)
	cities.Get("/search", s.cityHandler.SearchCities)
	cities.Get("/:slug", cached, s.cityHandler.GetCity)
	cities.Get("/:slug/places", cached, s.cityHandler.GetCityPlaces)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405 и т.п.) в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
			return utils.SendError(c, err)
		}

		return utils.SendError(c, errors.New(httpErrorCode(code), err.Error(), code))
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "HTTP_ERROR"
	}
}
