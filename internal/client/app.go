// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/internal/tui"
	"github.com/MKhiriev/go-belt-keeper/internal/workers"
)

// App runs one client session: restore, start workers, bootstrap, UI.
type App struct {
	bootstrap service.ClientBootstrapService
	ui        UI
	workers   *workers.Workers

	logger *logger.Logger
}

// NewApp builds an App.
func NewApp(bootstrap service.ClientBootstrapService, ui UI, w *workers.Workers, logger *logger.Logger) (*App, error) {
	if bootstrap == nil || ui == nil || w == nil {
		return nil, errors.New("client: bootstrap service, ui and workers are required")
	}
	return &App{bootstrap: bootstrap, ui: ui, workers: w, logger: logger}, nil
}

// Run implements [Client]. A failed restore or bootstrap is logged and the
// UI still starts; the account page shows the session error. The bootstrap
// fetch runs alongside the UI so its loading state is visible.
func (a *App) Run(ctx context.Context) error {
	if err := a.bootstrap.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("persisted state was not restored")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.bootstrap.Bootstrap(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("session bootstrap failed")
		}
	}()

	err := a.ui.Run(ctx)

	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
