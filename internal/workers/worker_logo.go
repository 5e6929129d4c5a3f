// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
)

// LogoHandler processes one logo download task.
type LogoHandler func(ctx context.Context, logoURL string)

// LogoWorker drains a bounded queue of logo URLs, one task at a time.
type LogoWorker struct {
	tasks  chan string
	handle LogoHandler
	logger *logger.Logger
}

// NewLogoWorker creates a worker whose queue holds cfg.LogoQueueSize tasks.
func NewLogoWorker(cfg config.ClientWorkers, handle LogoHandler, logger *logger.Logger) *LogoWorker {
	size := cfg.LogoQueueSize
	if size < 1 {
		size = 1
	}

	return &LogoWorker{
		tasks:  make(chan string, size),
		handle: handle,
		logger: logger,
	}
}

// Enqueue adds a task without blocking. It reports false when logoURL is
// empty or the queue is full.
func (w *LogoWorker) Enqueue(logoURL string) bool {
	if logoURL == "" {
		return false
	}

	select {
	case w.tasks <- logoURL:
		return true
	default:
		w.logger.Warn().Str("func", "LogoWorker.Enqueue").Str("url", logoURL).Msg("logo queue is full, task dropped")
		return false
	}
}

// Run implements [Worker].
func (w *LogoWorker) Run(ctx context.Context) {
	w.logger.Debug().Str("func", "LogoWorker.Run").Msg("logo worker started")
	defer w.logger.Debug().Str("func", "LogoWorker.Run").Msg("logo worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case logoURL := <-w.tasks:
			w.handle(ctx, logoURL)
		}
	}
}
