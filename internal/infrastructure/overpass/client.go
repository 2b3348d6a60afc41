package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nursing-locator/internal/config"
	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/domain/repository"
	"github.com/nursing-locator/internal/pkg/metrics"
	"github.com/nursing-locator/internal/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxErrorBody ограничивает тело ошибки, попадающее в лог и StatusError
const maxErrorBody = 2048

// StatusError - Overpass ответил не 2xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("overpass API error: status %d", e.StatusCode)
}

type client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	queryTimeout int
	limiter      *rate.Limiter
	logger       *zap.Logger
}

// NewClient создает клиент Overpass API
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.PlaceSource {
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.URL,
		userAgent:    cfg.UserAgent,
		queryTimeout: cfg.QueryTimeout,
		limiter:      rate.NewLimiter(limit, burst),
		logger:       logger,
	}
}

// FetchPlaces запрашивает места в прямоугольнике (nil - вся Швеция).
// Элементы без координат отбрасываются, остальные нормализуются.
func (c *client) FetchPlaces(ctx context.Context, bbox *domain.BoundingBox) ([]domain.Place, error) {
	ctx, span := tracing.StartSpan(ctx, "overpass.FetchPlaces",
		attribute.Bool("overpass.country", bbox == nil))
	defer span.End()

	query := BuildQuery(bbox, c.queryTimeout)

	resp, err := c.execute(ctx, query)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	places := ElementsToPlaces(resp.Elements)
	span.SetAttributes(
		attribute.Int("overpass.elements", len(resp.Elements)),
		attribute.Int("overpass.places", len(places)))

	c.logger.Debug("Overpass query successful",
		zap.Int("elements", len(resp.Elements)),
		zap.Int("places", len(places)))

	return places, nil
}

func (c *client) execute(ctx context.Context, query string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("Calling Overpass API", zap.String("url", c.baseURL))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.OverpassRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OverpassRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	metrics.OverpassRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var overpassResp Response
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &overpassResp, nil
}
