package places

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nursing-locator/internal/domain"
)

// recordingRefresher запоминает ключи и максимальное число одновременных вызовов
type recordingRefresher struct {
	mu       sync.Mutex
	keys     []string
	inFlight atomic.Int32
	peak     atomic.Int32
	failKey  string
}

func (r *recordingRefresher) Refresh(ctx context.Context, citySlug string) (*domain.PlacesResult, error) {
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		peak := r.peak.Load()
		if n <= peak || r.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	r.mu.Lock()
	r.keys = append(r.keys, citySlug)
	r.mu.Unlock()

	if citySlug == r.failKey {
		return nil, errors.New("boom")
	}
	return &domain.PlacesResult{Source: domain.SourceLive}, nil
}

func (r *recordingRefresher) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.keys...)
	sort.Strings(out)
	return out
}

func TestDefaultWarmKeys(t *testing.T) {
	keys := DefaultWarmKeys()
	require.Len(t, keys, len(domain.Cities)+1)
	assert.Equal(t, "", keys[0])
	assert.Equal(t, domain.Cities[0].Slug, keys[1])
}

func TestCacheWarmer_WarmAll(t *testing.T) {
	refresher := &recordingRefresher{failKey: "malmo"}
	w := NewCacheWarmer(refresher, time.Hour, []string{"stockholm", "malmo", "", "uppsala"}, zap.NewNop())

	w.WarmAll(context.Background())

	// ошибка одного ключа не останавливает остальные
	assert.Equal(t, []string{"", "malmo", "stockholm", "uppsala"}, refresher.calls())
	assert.LessOrEqual(t, refresher.peak.Load(), int32(warmConcurrency))
}

func TestCacheWarmer_StartAndStop(t *testing.T) {
	refresher := &recordingRefresher{}
	w := NewCacheWarmer(refresher, 20*time.Millisecond, []string{"lund"}, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	// первый прогрев сразу, затем по тикеру
	require.Eventually(t, func() bool { return len(refresher.calls()) >= 2 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("cache warmer did not stop")
	}
}

func TestCacheWarmer_DefaultKeys(t *testing.T) {
	w := NewCacheWarmer(&recordingRefresher{}, time.Hour, nil, zap.NewNop())
	assert.Equal(t, DefaultWarmKeys(), w.keys)
}
