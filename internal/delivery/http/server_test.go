package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nursing-locator/internal/config"
	deliveryhttp "github.com/nursing-locator/internal/delivery/http"
	"github.com/nursing-locator/internal/delivery/http/handler"
	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/repository/cache"
	redisrepo "github.com/nursing-locator/internal/repository/redis"
	"github.com/nursing-locator/internal/repository/static"
	"github.com/nursing-locator/internal/usecase"
)

type fakeSource struct {
	places []domain.Place
	err    error
	calls  atomic.Int32
}

func (f *fakeSource) FetchPlaces(ctx context.Context, bbox *domain.BoundingBox) ([]domain.Place, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type testEnv struct {
	server *deliveryhttp.Server
	mr     *miniredis.Miniredis
	client *redis.Client
	source *fakeSource
}

func boolPtr(b bool) *bool { return &b }

func livePlaces() []domain.Place {
	return []domain.Place{
		{ID: "osm-1", Name: "Skötrum", Slug: "skotrum-1", Type: domain.PlaceTypeChanging,
			Lat: 59.3303, Lng: 18.0586, CitySlug: "stockholm", Accessible: boolPtr(true)},
		{ID: "osm-2", Name: "Amningsrum", Slug: "amningsrum-2", Type: domain.PlaceTypeNursing,
			Lat: 59.3326, Lng: 18.0707, CitySlug: "stockholm", Accessible: boolPtr(false)},
		{ID: "osm-3", Name: "Amnings- och skötrum", Slug: "amnings-och-skotrum-3", Type: domain.PlaceTypeBoth,
			Lat: 55.6050, Lng: 13.0038, CitySlug: "malmo", Accessible: boolPtr(false)},
	}
}

func setupServer(t *testing.T, source *fakeSource) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Overpass: config.OverpassConfig{RequestTimeout: 5 * time.Second},
		CORS:     config.CORSConfig{AllowOrigins: "*"},
	}

	cacheRepo := cache.NewCacheRepository(cache.NewRedisFromClient(client, logger))
	streamRepo := redisrepo.NewStreamRepository(client, logger)

	placeUC := usecase.NewPlaceUseCase(source, static.NewFallbackRepository(), cacheRepo, logger, usecase.PlaceConfig{
		CacheTTL:    time.Hour,
		FallbackTTL: 5 * time.Minute,
		MaxRetries:  0,
		RetryDelay:  time.Millisecond,
	})
	cityUC := usecase.NewCityUseCase()
	refreshUC := usecase.NewRefreshUseCase(streamRepo, logger)

	server := deliveryhttp.NewServer(cfg, logger,
		handler.NewHealthHandler(cacheRepo, logger),
		handler.NewPlaceHandler(placeUC, refreshUC, logger),
		handler.NewCityHandler(cityUC, placeUC, logger),
	)

	return &testEnv{server: server, mr: mr, client: client, source: source}
}

func (e *testEnv) do(t *testing.T, method, target string) (*http.Response, envelope) {
	t.Helper()

	resp, err := e.server.App().Test(httptest.NewRequest(method, target, nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(body) > 0 && body[0] == '{' {
		require.NoError(t, json.Unmarshal(body, &env), string(body))
	}
	return resp, env
}

func TestHealth(t *testing.T) {
	env := setupServer(t, &fakeSource{})

	resp, _ := env.do(t, http.MethodGet, "/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	env.mr.Close()

	resp, err := env.server.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "unavailable", body["redis"])
}

func TestListPlaces(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	resp, body := env.do(t, http.MethodGet, "/api/v1/places?city=stockholm&filter=nursing")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))

	var data struct {
		Places []struct {
			ID        string `json:"id"`
			TypeLabel string `json:"type_label"`
		} `json:"places"`
		Total  int            `json:"total"`
		Source string         `json:"source"`
		Cached bool           `json:"cached"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))

	require.Len(t, data.Places, 1)
	assert.Equal(t, "osm-2", data.Places[0].ID)
	assert.Equal(t, "Amningsrum", data.Places[0].TypeLabel)
	assert.Equal(t, "live", data.Source)
	assert.False(t, data.Cached)
	assert.Equal(t, 2, data.Counts["all"])
	assert.Equal(t, 1, data.Counts["accessible"])

	// второй запрос из кеша
	_, body = env.do(t, http.MethodGet, "/api/v1/places?city=stockholm")
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.True(t, data.Cached)
	assert.Len(t, data.Places, 2)
	assert.Equal(t, int32(1), env.source.calls.Load())
}

func TestListPlaces_Fallback(t *testing.T) {
	env := setupServer(t, &fakeSource{err: errors.New("overpass down")})

	resp, body := env.do(t, http.MethodGet, "/api/v1/places?city=goteborg")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "fallback", body.Meta["source"])
	assert.Equal(t, "error", body.Meta["fallback_reason"])
	assert.EqualValues(t, 1, body.Meta["total"])
}

func TestListPlaces_UnknownCities(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	for _, city := range []string{"x1", "x2", "x3"} {
		resp, body := env.do(t, http.MethodGet, "/api/v1/places?city="+city)
		require.Equal(t, http.StatusOK, resp.StatusCode, city)
		assert.EqualValues(t, 0, body.Meta["total"], city)
		assert.Equal(t, "fallback", body.Meta["source"], city)
	}

	assert.Equal(t, int32(1), env.source.calls.Load())
	assert.True(t, env.mr.Exists("places:all"))
	assert.False(t, env.mr.Exists("places:x1"))
	assert.Len(t, env.mr.Keys(), 1)
}

func TestListPlaces_InvalidFilter(t *testing.T) {
	env := setupServer(t, &fakeSource{})

	resp, body := env.do(t, http.MethodGet, "/api/v1/places?filter=bogus")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_FILTER", body.Error.Code)
	assert.Equal(t, int32(0), env.source.calls.Load())
}

func TestGetPlace(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	resp, body := env.do(t, http.MethodGet, "/api/v1/places/amnings-och-skotrum-3")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var place struct {
		ID    string `json:"id"`
		Links struct {
			Directions string `json:"directions"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &place))
	assert.Equal(t, "osm-3", place.ID)
	assert.Contains(t, place.Links.Directions, "55.605")

	resp, body = env.do(t, http.MethodGet, "/api/v1/places/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PLACE_NOT_FOUND", body.Error.Code)
}

func TestNearby(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	resp, body := env.do(t, http.MethodGet, "/api/v1/places/nearby?lat=59.3303&lon=18.0586&radius_km=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Places []struct {
			ID            string `json:"id"`
			DistanceLabel string `json:"distance_label"`
		} `json:"places"`
		CitySlug string `json:"city_slug"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Places, 2)
	assert.Equal(t, "osm-1", data.Places[0].ID)
	assert.Equal(t, "0 m bort", data.Places[0].DistanceLabel)
	assert.Equal(t, "stockholm", data.CitySlug)

	resp, body = env.do(t, http.MethodGet, "/api/v1/places/nearby?lat=abc&lon=18")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_COORDINATES", body.Error.Code)

	resp, body = env.do(t, http.MethodGet, "/api/v1/places/nearby?lat=59&lon=18&limit=1000")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
}

func TestRequestRefresh(t *testing.T) {
	env := setupServer(t, &fakeSource{})

	resp, body := env.do(t, http.MethodPost, "/api/v1/places/refresh?city=malmo")
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var data struct {
		RequestID string `json:"request_id"`
		CitySlug  string `json:"city_slug"`
		MessageID string `json:"message_id"`
		Stream    string `json:"stream"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "malmo", data.CitySlug)
	assert.Equal(t, domain.StreamPlacesRefresh, data.Stream)
	assert.NotEmpty(t, data.RequestID)

	n, err := env.client.XLen(context.Background(), domain.StreamPlacesRefresh).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	resp, body = env.do(t, http.MethodPost, "/api/v1/places/refresh?city=atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CITY_NOT_FOUND", body.Error.Code)
}

func TestCities(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	resp, body := env.do(t, http.MethodGet, "/api/v1/cities")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, len(domain.Cities), body.Meta["total"])

	resp, body = env.do(t, http.MethodGet, "/api/v1/cities/search?q=malmo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found []struct {
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &found))
	require.NotEmpty(t, found)
	assert.Equal(t, "malmo", found[0].Slug)

	resp, body = env.do(t, http.MethodGet, "/api/v1/cities/search")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)

	resp, _ = env.do(t, http.MethodGet, "/api/v1/cities/uppsala")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, "/api/v1/cities/atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CITY_NOT_FOUND", body.Error.Code)
}

func TestCityPlaces(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	resp, body := env.do(t, http.MethodGet, "/api/v1/cities/malmo/places")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		City struct {
			Name string `json:"name"`
		} `json:"city"`
		Places []struct {
			ID string `json:"id"`
		} `json:"places"`
		Source string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "Malmö", data.City.Name)
	require.Len(t, data.Places, 1)
	assert.Equal(t, "osm-3", data.Places[0].ID)
	assert.Equal(t, "live", data.Source)

	resp, _ = env.do(t, http.MethodGet, "/api/v1/cities/atlantis/places")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), env.source.calls.Load())
}

func TestUnknownRoute(t *testing.T) {
	env := setupServer(t, &fakeSource{})

	resp, body := env.do(t, http.MethodGet, "/api/v1/nothing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupServer(t, &fakeSource{})

	env.do(t, http.MethodGet, "/api/v1/health")

	resp, err := env.server.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListPlaces_ETag(t *testing.T) {
	env := setupServer(t, &fakeSource{places: livePlaces()})

	resp, _ := env.do(t, http.MethodGet, "/api/v1/cities")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tag := resp.Header.Get("ETag")
	require.NotEmpty(t, tag)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil)
	req.Header.Set("If-None-Match", tag)
	resp, err := env.server.App().Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}
