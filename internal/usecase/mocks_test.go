package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nursing-locator/internal/domain"
)

// MockPlaceSource is a mock of PlaceSource
type MockPlaceSource struct {
	mock.Mock
}

func (m *MockPlaceSource) FetchPlaces(ctx context.Context, bbox *domain.BoundingBox) ([]domain.Place, error) {
	args := m.Called(ctx, bbox)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

// MockPlacesCache is a mock of CacheRepository
type MockPlacesCache struct {
	mock.Mock
}

func (m *MockPlacesCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPlacesCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockPlacesCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockPlacesCache) GetPlaces(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	args := m.Called(ctx, citySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlacesResult), args.Error(1)
}

func (m *MockPlacesCache) SetPlaces(ctx context.Context, citySlug string, result *domain.PlacesResult, ttl time.Duration) error {
	args := m.Called(ctx, citySlug, result, ttl)
	return args.Error(0)
}

func (m *MockPlacesCache) DeletePlaces(ctx context.Context, citySlug string) error {
	args := m.Called(ctx, citySlug)
	return args.Error(0)
}

func (m *MockPlacesCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
