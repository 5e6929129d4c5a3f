// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/mock"
	"github.com/MKhiriev/go-belt-keeper/internal/tui"
	"github.com/MKhiriev/go-belt-keeper/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	run func(ctx context.Context) error
}

func (f fakeUI) Run(ctx context.Context) error { return f.run(ctx) }

type fakeWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (w *fakeWorker) Run(ctx context.Context) {
	w.started.Store(true)
	<-ctx.Done()
	w.stopped.Store(true)
}

func TestNewApp_RequiresCollaborators(t *testing.T) {
	_, err := NewApp(nil, fakeUI{}, workers.NewWorkers(), logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockClientBootstrapService(ctrl)
	worker := &fakeWorker{}

	restore := bootstrap.EXPECT().Restore(gomock.Any()).Return(nil)
	bootstrap.EXPECT().Bootstrap(gomock.Any()).After(restore).Return(nil)

	ui := fakeUI{run: func(ctx context.Context) error { return nil }}
	app, err := NewApp(bootstrap, ui, workers.NewWorkers(worker), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, worker.stopped.Load())
}

func TestApp_Run_FailuresDoNotStopTheUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockClientBootstrapService(ctrl)

	bootstrap.EXPECT().Restore(gomock.Any()).Return(errors.New("corrupt"))
	bootstrap.EXPECT().Bootstrap(gomock.Any()).Return(errors.New("offline"))

	var uiRan atomic.Bool
	ui := fakeUI{run: func(ctx context.Context) error {
		uiRan.Store(true)
		return tui.ErrUserQuit
	}}
	app, err := NewApp(bootstrap, ui, workers.NewWorkers(), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, uiRan.Load())
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockClientBootstrapService(ctrl)

	bootstrap.EXPECT().Restore(gomock.Any()).Return(nil)
	bootstrap.EXPECT().Bootstrap(gomock.Any()).Return(nil)

	ui := fakeUI{run: func(ctx context.Context) error { return errors.New("no tty") }}
	app, err := NewApp(bootstrap, ui, workers.NewWorkers(), logger.Nop())
	require.NoError(t, err)

	assert.ErrorContains(t, app.Run(context.Background()), "no tty")
}
