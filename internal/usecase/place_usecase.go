package usecase

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/domain/repository"
	"github.com/nursing-locator/internal/pkg/errors"
	"github.com/nursing-locator/internal/pkg/metrics"
	"github.com/nursing-locator/internal/pkg/tracing"
	"github.com/nursing-locator/internal/pkg/utils"
	"github.com/nursing-locator/internal/usecase/dto"
)

const (
	defaultNearbyRadiusKm = 5.0
	defaultNearbyLimit    = 20
)

// PlaceConfig - параметры кеширования и повторов
type PlaceConfig struct {
	CacheTTL    time.Duration
	FallbackTTL time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
}

// PlaceUseCase - получение мест: кеш, Overpass с повторами, встроенный набор
type PlaceUseCase struct {
	source    repository.PlaceSource
	fallback  repository.FallbackSource
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cfg       PlaceConfig

	group singleflight.Group
	now   func() time.Time
}

// NewPlaceUseCase - создание нового PlaceUseCase
func NewPlaceUseCase(
	source repository.PlaceSource,
	fallback repository.FallbackSource,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cfg PlaceConfig,
) *PlaceUseCase {
	return &PlaceUseCase{
		source:    source,
		fallback:  fallback,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// GetPlaces возвращает места города ("" - вся страна).
// Сначала кеш, затем один общий запрос к Overpass на ключ.
// Неизвестный город берется из набора всей страны и не получает своего ключа.
func (uc *PlaceUseCase) GetPlaces(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	if !knownCity(citySlug) {
		return uc.unknownCity(ctx, citySlug)
	}

	cached, err := uc.cacheRepo.GetPlaces(ctx, citySlug)
	if err != nil {
		uc.logger.Warn("Places cache read failed", zap.String("city", citySlug), zap.Error(err))
	}
	if cached != nil {
		metrics.CacheHits.Inc()
		cached.Cached = true
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	return uc.load(ctx, citySlug)
}

// ListPlaces возвращает места города с фильтром. Счетчики считаются по всему набору города.
func (uc *PlaceUseCase) ListPlaces(ctx context.Context, citySlug string, filter domain.PlaceFilter) (*dto.PlacesResponse, error) {
	result, err := uc.GetPlaces(ctx, citySlug)
	if err != nil {
		return nil, err
	}

	filtered := FilterPlaces(result.Places, filter)
	return &dto.PlacesResponse{
		Places:         dto.ToPlaceResponses(filtered),
		Total:          len(filtered),
		Source:         result.Source,
		FallbackReason: result.FallbackReason,
		Cached:         result.Cached,
		Counts:         CountByFilter(result.Places),
	}, nil
}

// Invalidate удаляет результат города из кеша
func (uc *PlaceUseCase) Invalidate(ctx context.Context, citySlug string) error {
	if err := uc.cacheRepo.DeletePlaces(ctx, citySlug); err != nil {
		uc.logger.Error("Failed to delete places from cache", zap.String("city", citySlug), zap.Error(err))
		return errors.ErrCacheError.WithDetails(map[string]interface{}{"city": citySlug})
	}
	return nil
}

// Refresh сбрасывает кеш города и загружает данные заново
func (uc *PlaceUseCase) Refresh(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	if !knownCity(citySlug) {
		return nil, errors.ErrCityNotFound
	}
	// кеш недоступен - все равно перезагружаем
	_ = uc.Invalidate(ctx, citySlug)
	return uc.load(ctx, citySlug)
}

// GetPlaceBySlug ищет место в наборе всей страны
func (uc *PlaceUseCase) GetPlaceBySlug(ctx context.Context, slug string) (*domain.Place, error) {
	result, err := uc.GetPlaces(ctx, "")
	if err != nil {
		return nil, err
	}

	for i := range result.Places {
		if result.Places[i].Slug == slug {
			place := result.Places[i]
			return &place, nil
		}
	}
	return nil, errors.ErrPlaceNotFound
}

// Nearby возвращает места в радиусе от точки, ближайшие первыми
func (uc *PlaceUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = defaultNearbyRadiusKm
	}
	if !utils.ValidateRadius(req.RadiusKm) {
		return nil, errors.ErrInvalidRadius
	}
	if req.Limit <= 0 {
		req.Limit = defaultNearbyLimit
	}

	result, err := uc.GetPlaces(ctx, "")
	if err != nil {
		return nil, err
	}

	nearby := make([]dto.NearbyPlace, 0)
	for _, p := range result.Places {
		distanceKm := utils.HaversineDistance(req.Lat, req.Lon, p.Lat, p.Lng)
		if distanceKm > req.RadiusKm {
			continue
		}
		meters := distanceKm * 1000
		nearby = append(nearby, dto.NearbyPlace{
			PlaceResponse: dto.ToPlaceResponse(p),
			DistanceM:     meters,
			DistanceLabel: utils.FormatDistance(meters),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceM < nearby[j].DistanceM
	})
	if len(nearby) > req.Limit {
		nearby = nearby[:req.Limit]
	}

	return &dto.NearbyResponse{
		Places:   nearby,
		Total:    len(nearby),
		RadiusKm: req.RadiusKm,
		CitySlug: domain.ResolveCity(req.Lat, req.Lon),
	}, nil
}

// unknownCity фильтрует набор всей страны по slug. Если живых мест нет,
// отдается встроенный набор с тем же фильтром.
func (uc *PlaceUseCase) unknownCity(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	all, err := uc.GetPlaces(ctx, "")
	if err != nil {
		return nil, err
	}

	result := *all
	result.Places = filterByCity(all.Places, citySlug)
	if len(result.Places) == 0 && result.Source == domain.SourceLive {
		result.Places = uc.fallback.Places(citySlug)
		result.Source = domain.SourceFallback
		result.FallbackReason = domain.FallbackEmpty
	}
	return &result, nil
}

// load выполняет загрузку один раз на ключ, остальные вызовы ждут ее результата.
// Общая загрузка не отменяется, если ушел один из ожидающих.
func (uc *PlaceUseCase) load(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	key := cacheKey(citySlug)
	shared := context.WithoutCancel(ctx)

	ch := uc.group.DoChan(key, func() (interface{}, error) {
		return uc.fetchAndStore(shared, citySlug), nil
	})

	select {
	case res := <-ch:
		return res.Val.(*domain.PlacesResult), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetchAndStore всегда возвращает результат: живые данные или встроенный набор
func (uc *PlaceUseCase) fetchAndStore(ctx context.Context, citySlug string) *domain.PlacesResult {
	ctx, span := tracing.StartSpan(ctx, "places.load", attribute.String("city", cacheKey(citySlug)))
	defer span.End()

	start := uc.now()

	places, err := uc.fetchWithRetry(ctx, citySlug)
	tracing.RecordError(span, err)
	if err == nil && citySlug != "" {
		places = filterByCity(places, citySlug)
	}

	result := &domain.PlacesResult{
		Places:    places,
		Source:    domain.SourceLive,
		FetchedAt: start.UTC(),
	}
	ttl := uc.cfg.CacheTTL

	switch {
	case err != nil:
		uc.logger.Warn("Overpass fetch failed, using fallback places",
			zap.String("city", citySlug), zap.Error(err))
		result.Places = uc.fallback.Places(citySlug)
		result.Source = domain.SourceFallback
		result.FallbackReason = domain.FallbackError
		ttl = uc.cfg.FallbackTTL
	case len(places) == 0:
		uc.logger.Info("No places from Overpass, using fallback places", zap.String("city", citySlug))
		result.Places = uc.fallback.Places(citySlug)
		result.Source = domain.SourceFallback
		result.FallbackReason = domain.FallbackEmpty
		ttl = uc.cfg.FallbackTTL
	}

	metrics.PlacesFetchTotal.WithLabelValues(string(result.Source), string(result.FallbackReason)).Inc()
	span.SetAttributes(
		attribute.String("places.source", string(result.Source)),
		attribute.Int("places.count", len(result.Places)))

	if err := uc.cacheRepo.SetPlaces(ctx, citySlug, result, ttl); err != nil {
		uc.logger.Warn("Failed to cache places", zap.String("city", citySlug), zap.Error(err))
	}

	uc.logger.Info("Places loaded",
		zap.String("city", citySlug),
		zap.String("source", string(result.Source)),
		zap.Int("count", len(result.Places)),
		zap.Duration("duration", uc.now().Sub(start)))

	return result
}

// fetchWithRetry делает до MaxRetries повторов с линейно растущей паузой.
// Пустой ответ не ошибка и не повторяется.
func (uc *PlaceUseCase) fetchWithRetry(ctx context.Context, citySlug string) ([]domain.Place, error) {
	var bbox *domain.BoundingBox
	if city, ok := domain.CityBySlug(citySlug); ok {
		bbox = &city.Bounds
	}

	var lastErr error
	for attempt := 0; attempt <= uc.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := uc.cfg.RetryDelay * time.Duration(attempt)
			uc.logger.Debug("Retrying Overpass fetch",
				zap.String("city", citySlug),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		places, err := uc.source.FetchPlaces(ctx, bbox)
		if err == nil {
			return places, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func filterByCity(places []domain.Place, citySlug string) []domain.Place {
	filtered := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if p.CitySlug == citySlug {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func knownCity(citySlug string) bool {
	if citySlug == "" {
		return true
	}
	_, ok := domain.CityBySlug(citySlug)
	return ok
}

func cacheKey(citySlug string) string {
	if citySlug == "" {
		return "all"
	}
	return citySlug
}

// FilterPlaces оставляет места, подходящие под фильтр
func FilterPlaces(places []domain.Place, filter domain.PlaceFilter) []domain.Place {
	if filter == "" || filter == domain.FilterAll {
		return places
	}
	filtered := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if filter.Match(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CountByFilter считает места для каждого фильтра
func CountByFilter(places []domain.Place) map[string]int {
	counts := make(map[string]int, len(domain.PlaceFilters))
	for _, f := range domain.PlaceFilters {
		counts[string(f)] = 0
	}
	for _, p := range places {
		for _, f := range domain.PlaceFilters {
			if f.Match(p) {
				counts[string(f)]++
			}
		}
	}
	return counts
}
