// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user left with ctrl+c.
var ErrUserQuit = errors.New("user quit")

const (
	pageAccount  = "account"
	pageLogin    = "login"
	pageEdit     = "edit"
	pageProgress = "progress"
)

// TUI runs the interactive program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New returns a TUI over services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AccountService == nil {
		return nil, errors.New("tui: account service is required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// NewRoot builds the root model with every page registered.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageAccount:  NewAccountModel(ctx, t.services.AccountService),
		pageLogin:    NewLoginModel(ctx, t.services.AccountService),
		pageEdit:     NewEditModel(ctx, t.services.AccountService),
		pageProgress: NewProgressModel(ctx, t.services.TheoryService, t.services.TrainingService),
	}
	return NewRootModel(pages, pageAccount, t.buildInfo)
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user left the program")
		return ErrUserQuit
	}

	return nil
}
