package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type stuckWorker struct {
	*BaseWorker
}

func (w *stuckWorker) Start(ctx context.Context) error {
	time.Sleep(time.Second)
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	a := &blockingWorker{BaseWorker: NewBaseWorker("a", zap.NewNop())}
	b := &blockingWorker{BaseWorker: NewBaseWorker("b", zap.NewNop())}
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool { return a.started.Load() && b.started.Load() }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Stop(ctx))

	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
	// повторная остановка не паникует
	assert.NoError(t, a.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_RegisterAfterStartIgnored(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.Register(&blockingWorker{BaseWorker: NewBaseWorker("a", zap.NewNop())})
	require.NoError(t, m.Start(context.Background()))

	m.Register(&blockingWorker{BaseWorker: NewBaseWorker("late", zap.NewNop())})
	assert.Len(t, m.workers, 1)

	require.NoError(t, m.Stop(context.Background()))
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.Register(&stuckWorker{BaseWorker: NewBaseWorker("stuck", zap.NewNop())})
	require.NoError(t, m.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.Stop(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestBaseWorker_StopContext(t *testing.T) {
	w := NewBaseWorker("ctx", zap.NewNop())
	ctx, cancel := w.StopContext(context.Background())
	defer cancel()

	assert.NoError(t, ctx.Err())
	require.NoError(t, w.Stop())

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled after Stop")
	}
}
