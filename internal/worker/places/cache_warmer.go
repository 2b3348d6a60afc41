package places

import (
	"context"
	"time"

	"github.com/nursing-locator/internal/domain"
	"github.com/nursing-locator/internal/worker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// warmConcurrency - сколько ключей прогревается одновременно
const warmConcurrency = 2

// CacheWarmer периодически обновляет кеш мест для списка ключей
type CacheWarmer struct {
	*worker.BaseWorker
	refresher PlacesRefresher
	interval  time.Duration
	keys      []string
}

// NewCacheWarmer создает прогрев. Пустой список - все города и вся страна ("").
func NewCacheWarmer(refresher PlacesRefresher, interval time.Duration, keys []string, logger *zap.Logger) *CacheWarmer {
	if len(keys) == 0 {
		keys = DefaultWarmKeys()
	}
	return &CacheWarmer{
		BaseWorker: worker.NewBaseWorker("places-cache-warmer", logger),
		refresher:  refresher,
		interval:   interval,
		keys:       keys,
	}
}

// DefaultWarmKeys - вся страна и все известные города
func DefaultWarmKeys() []string {
	keys := make([]string, 0, len(domain.Cities)+1)
	keys = append(keys, "")
	for _, c := range domain.Cities {
		keys = append(keys, c.Slug)
	}
	return keys
}

// Start прогревает кеш сразу и затем раз в interval
func (w *CacheWarmer) Start(ctx context.Context) error {
	w.Logger().Info("Starting cache warmer",
		zap.Duration("interval", w.interval),
		zap.Int("keys", len(w.keys)))

	ctx, cancel := w.StopContext(ctx)
	defer cancel()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.WarmAll(ctx)

		select {
		case <-ctx.Done():
			w.Logger().Info("Cache warmer stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// WarmAll обновляет все ключи, ошибки отдельных ключей только логируются
func (w *CacheWarmer) WarmAll(ctx context.Context) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	for _, key := range w.keys {
		g.Go(func() error {
			result, err := w.refresher.Refresh(gctx, key)
			if err != nil {
				w.Logger().Warn("Failed to warm places cache", zap.String("city", key), zap.Error(err))
				return nil
			}
			w.Logger().Debug("Places cache warmed",
				zap.String("city", key),
				zap.String("source", string(result.Source)),
				zap.Int("count", len(result.Places)))
			return nil
		})
	}
	_ = g.Wait()

	w.Logger().Info("Cache warm-up finished",
		zap.Int("keys", len(w.keys)),
		zap.Duration("duration", time.Since(start)))
}
