// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface that counts
// starts and waits for cancellation.
type mockWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.started.Add(1)
	<-ctx.Done()
	m.stopped.Add(1)
}

func TestWorkers_RunAndStop(t *testing.T) {
	w1, w2 := &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2)

	ws.Run(context.Background())
	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, time.Millisecond)

	ws.Stop()

	assert.EqualValues(t, 1, w1.stopped.Load())
	assert.EqualValues(t, 1, w2.stopped.Load())
}

func TestWorkers_RunTwiceStartsOnce(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Run(context.Background())
	require.Eventually(t, func() bool { return w.started.Load() >= 1 }, time.Second, time.Millisecond)
	ws.Stop()

	assert.EqualValues(t, 1, w.started.Load())
}

func TestWorkers_ParentCancelStopsWorkers(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)
	ctx, cancel := context.WithCancel(context.Background())

	ws.Run(ctx)
	cancel()

	require.Eventually(t, func() bool { return w.stopped.Load() == 1 }, time.Second, time.Millisecond)
	ws.Stop()
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on an empty set or on Stop without Run
	ws.Stop()
	ws.Run(context.Background())
	ws.Stop()
}

func TestLogoWorker_HandlesTasksInOrder(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	handled := make(chan struct{}, 2)
	w := NewLogoWorker(config.ClientWorkers{LogoQueueSize: 4}, func(_ context.Context, url string) {
		mu.Lock()
		seen = append(seen, url)
		mu.Unlock()
		handled <- struct{}{}
	}, logger.Nop())

	assert.True(t, w.Enqueue("https://x/a.png"))
	assert.True(t, w.Enqueue("https://x/b.png"))

	ws := NewWorkers(w)
	ws.Run(context.Background())
	defer ws.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-handled:
		case <-time.After(time.Second):
			t.Fatal("logo task was not handled")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"https://x/a.png", "https://x/b.png"}, seen)
}

func TestLogoWorker_EnqueueRejectsEmptyAndFull(t *testing.T) {
	w := NewLogoWorker(config.ClientWorkers{LogoQueueSize: 1}, func(context.Context, string) {}, logger.Nop())

	assert.False(t, w.Enqueue(""))
	assert.True(t, w.Enqueue("https://x/a.png"))
	assert.False(t, w.Enqueue("https://x/b.png"))
}

func TestLogoWorker_MinimumQueueSize(t *testing.T) {
	w := NewLogoWorker(config.ClientWorkers{}, func(context.Context, string) {}, logger.Nop())

	assert.Equal(t, 1, cap(w.tasks))
}
