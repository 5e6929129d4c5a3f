// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
)

type clientLogoService struct {
	store *state.AccountStore
	cache LogoCache

	logger *logger.Logger
}

// NewClientLogoService wires the logo cache to the account store.
func NewClientLogoService(accountStore *state.AccountStore, cache LogoCache, logger *logger.Logger) ClientLogoService {
	return &clientLogoService{store: accountStore, cache: cache, logger: logger}
}

func (l *clientLogoService) SyncLogo(ctx context.Context, logoURL string) (string, error) {
	path, err := l.cache.FetchOrDownload(ctx, logoURL)
	if err != nil {
		return "", err
	}

	if !l.store.SetSchoolLogoPath(logoURL, path) {
		l.logger.Debug().Str("func", "clientLogoService.SyncLogo").Str("url", logoURL).Msg("logo url changed, path not recorded")
	}

	return path, nil
}

func (l *clientLogoService) HandleTask(ctx context.Context, logoURL string) {
	if _, err := l.SyncLogo(ctx, logoURL); err != nil {
		l.logger.Err(err).Str("func", "clientLogoService.HandleTask").Str("url", logoURL).Msg("school logo not cached")
	}
}
