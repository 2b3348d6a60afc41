package places

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/domain/repository"
	"github.com/nursing-locator/internal/worker"
	"go.uber.org/zap"
)

// PlacesRefresher - перезагрузка мест города в обход кеша
type PlacesRefresher interface {
	Refresh(ctx context.Context, citySlug string) (*domain.PlacesResult, error)
}

// RefreshWorker обрабатывает запросы из stream:places:refresh
type RefreshWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	refresher     PlacesRefresher
	consumerGroup string
	consumerName  string
	now           func() time.Time
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(
	streamRepo repository.StreamRepository,
	refresher PlacesRefresher,
	consumerGroup string,
	logger *zap.Logger,
) *RefreshWorker {
	hostname, _ := os.Hostname()

	return &RefreshWorker{
		BaseWorker:    worker.NewBaseWorker("places-refresh", logger),
		streamRepo:    streamRepo,
		refresher:     refresher,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		now:           time.Now,
	}
}

// Start читает стрим до остановки воркера или отмены контекста
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting places refresh worker",
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlacesRefresh, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := w.StopContext(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamPlacesRefresh, w.consumerGroup, w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for msg := range messages {
		w.handleMessage(ctx, msg)
	}

	logger.Info("Places refresh worker stopped")
	return nil
}

// handleMessage обрабатывает одно сообщение. Битые сообщения подтверждаются и пропускаются.
func (w *RefreshWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseRefreshEvent(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	done := &domain.PlacesRefreshedEvent{
		RequestID: event.RequestID,
		CitySlug:  event.CitySlug,
	}

	_, known := domain.CityBySlug(event.CitySlug)
	if event.CitySlug != "" && !known {
		done.Error = "unknown city"
	} else {
		result, err := w.refresher.Refresh(ctx, event.CitySlug)
		if err != nil {
			if ctx.Err() != nil {
				// не подтверждаем, сообщение останется в pending
				return
			}
			done.Error = err.Error()
		} else {
			done.Source = result.Source
			done.FallbackReason = result.FallbackReason
			done.Count = len(result.Places)
		}
	}
	done.RefreshedAt = w.now().UTC()

	if _, err := w.streamRepo.PublishToStream(ctx, domain.StreamPlacesRefreshed, done); err != nil {
		logger.Error("Failed to publish refreshed event", zap.Error(err))
	}
	w.ack(ctx, msg.ID)

	logger.Info("Places refreshed",
		zap.String("request_id", event.RequestID.String()),
		zap.String("city", event.CacheKey()),
		zap.String("source", string(done.Source)),
		zap.Int("count", done.Count),
		zap.String("error", done.Error))
}

func (w *RefreshWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamPlacesRefresh, w.consumerGroup, messageID); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}

func parseRefreshEvent(msg domain.StreamMessage) (*domain.PlacesRefreshEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.PlacesRefreshEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
