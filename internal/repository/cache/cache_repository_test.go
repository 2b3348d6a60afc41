package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/nursing-locator/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *cacheRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewCacheRepository(NewRedisFromClient(client, zap.NewNop())).(*cacheRepository)
	return mr, repo
}

func TestPlacesKey(t *testing.T) {
	assert.Equal(t, "places:all", PlacesKey(""))
	assert.Equal(t, "places:stockholm", PlacesKey("stockholm"))
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	mr, repo := setupCache(t)
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	assert.True(t, mr.Exists("k"))

	require.NoError(t, repo.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestCacheRepository_Places(t *testing.T) {
	mr, repo := setupCache(t)
	ctx := context.Background()

	cached, err := repo.GetPlaces(ctx, "malmo")
	require.NoError(t, err)
	assert.Nil(t, cached)

	accessible := true
	osmID := int64(42)
	result := &domain.PlacesResult{
		Places: []domain.Place{{
			ID: "osm-42", Name: "Test Room", Slug: "test-room-42", Type: domain.PlaceTypeChanging,
			Lat: 55.6, Lng: 13.0, CitySlug: "malmo", Accessible: &accessible,
			OSMType: "node", OSMID: &osmID,
		}},
		Source:    domain.SourceLive,
		FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Cached:    true,
	}

	require.NoError(t, repo.SetPlaces(ctx, "malmo", result, time.Hour))
	assert.True(t, mr.Exists("places:malmo"))
	assert.Equal(t, time.Hour, mr.TTL("places:malmo"))

	cached, err = repo.GetPlaces(ctx, "malmo")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, result.Places, cached.Places)
	assert.Equal(t, domain.SourceLive, cached.Source)
	assert.True(t, result.FetchedAt.Equal(cached.FetchedAt))
	// Cached не сериализуется, его выставляет use case
	assert.False(t, cached.Cached)

	mr.FastForward(time.Hour + time.Second)
	cached, err = repo.GetPlaces(ctx, "malmo")
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, repo.SetPlaces(ctx, "", result, time.Minute))
	require.NoError(t, repo.DeletePlaces(ctx, ""))
	assert.False(t, mr.Exists("places:all"))
}

func TestCacheRepository_CorruptedPlaces(t *testing.T) {
	mr, repo := setupCache(t)
	require.NoError(t, mr.Set("places:lund", "not json"))

	_, err := repo.GetPlaces(context.Background(), "lund")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal places")
}

func TestCacheRepository_RedisDown(t *testing.T) {
	mr, repo := setupCache(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Error(t, repo.Ping(context.Background()))
}
