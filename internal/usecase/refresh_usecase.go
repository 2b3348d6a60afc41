package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/domain/repository"
	"github.com/nursing-locator/internal/pkg/errors"
	"github.com/nursing-locator/internal/usecase/dto"
)

// RefreshUseCase - публикация запросов на обновление кеша для воркера
type RefreshUseCase struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewRefreshUseCase(streamRepo repository.StreamRepository, logger *zap.Logger) *RefreshUseCase {
	return &RefreshUseCase{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// RequestRefresh публикует PlacesRefreshEvent в stream:places:refresh
func (uc *RefreshUseCase) RequestRefresh(ctx context.Context, citySlug string) (*dto.RefreshResponse, error) {
	if citySlug != "" {
		if _, ok := domain.CityBySlug(citySlug); !ok {
			return nil, errors.ErrCityNotFound
		}
	}

	event := &domain.PlacesRefreshEvent{
		RequestID:   uuid.New(),
		CitySlug:    citySlug,
		RequestedAt: time.Now().UTC(),
	}

	messageID, err := uc.streamRepo.PublishToStream(ctx, domain.StreamPlacesRefresh, event)
	if err != nil {
		uc.logger.Error("Failed to publish refresh request",
			zap.String("city", citySlug), zap.Error(err))
		return nil, errors.ErrStreamError
	}

	uc.logger.Info("Refresh requested",
		zap.String("request_id", event.RequestID.String()),
		zap.String("city", event.CacheKey()),
		zap.String("message_id", messageID))

	return &dto.RefreshResponse{
		RequestID: event.RequestID,
		CitySlug:  citySlug,
		MessageID: messageID,
		Stream:    domain.StreamPlacesRefresh,
	}, nil
}
