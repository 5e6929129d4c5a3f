// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
)

type clientBootstrapService struct {
	store     *state.AccountStore
	persister accountPersister
	account   ClientAccountService

	logger *logger.Logger
}

// NewClientBootstrapService wires the start-up sequence.
func NewClientBootstrapService(
	accountStore *state.AccountStore,
	persistedState store.PersistedStateRepository,
	account ClientAccountService,
	logger *logger.Logger,
) ClientBootstrapService {
	return &clientBootstrapService{
		store:     accountStore,
		persister: accountPersister{repo: persistedState, store: accountStore},
		account:   account,
		logger:    logger,
	}
}

// Restore implements [ClientBootstrapService]. An undecodable payload is
// logged and replaced by a defaulted account.
func (b *clientBootstrapService) Restore(ctx context.Context) error {
	persisted, err := b.persister.load(ctx)
	if err != nil {
		b.logger.Err(err).Str("func", "clientBootstrapService.Restore").Msg("persisted account ignored")
		b.store.Restore(persisted)
		return err
	}

	b.store.Restore(persisted)
	b.logger.Debug().
		Str("func", "clientBootstrapService.Restore").
		Bool("has_token", persisted.Token != "").
		Msg("account restored")

	return nil
}

// Bootstrap implements [ClientBootstrapService]. A failed fetch is returned
// for the caller to report; the account keeps its token.
func (b *clientBootstrapService) Bootstrap(ctx context.Context) error {
	if b.store.Snapshot().Session.Token == "" {
		return nil
	}

	if err := b.account.FetchCurrentUser(ctx); err != nil {
		b.logger.Warn().Err(err).Str("func", "clientBootstrapService.Bootstrap").Msg("session bootstrap fetch failed")
		return err
	}

	return nil
}
