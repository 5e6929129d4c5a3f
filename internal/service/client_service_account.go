// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/adapter"
	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/profile"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/models"
)

type clientAccountService struct {
	store     *state.AccountStore
	adapter   adapter.AccountAdapter
	persister accountPersister
	logos     LogoQueue

	logger *logger.Logger
}

// NewClientAccountService wires the account operations to accountStore.
func NewClientAccountService(
	accountStore *state.AccountStore,
	accountAdapter adapter.AccountAdapter,
	persistedState store.PersistedStateRepository,
	logos LogoQueue,
	logger *logger.Logger,
) ClientAccountService {
	return &clientAccountService{
		store:     accountStore,
		adapter:   accountAdapter,
		persister: accountPersister{repo: persistedState, store: accountStore},
		logos:     logos,
		logger:    logger,
	}
}

func (s *clientAccountService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return app.InvalidInput(app.MsgMissingCredentials)
	}

	s.store.LoginStarted()

	resp, err := s.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.store.LoginFailed(err)
		s.logger.Err(err).Str("func", "clientAccountService.Login").Str("email", email).Msg("login failed")
		return err
	}

	s.store.LoginSucceeded(resp.Token)
	s.persist(ctx, "clientAccountService.Login")
	s.logger.Info().Str("func", "clientAccountService.Login").Str("email", email).Msg("logged in")

	if err = s.FetchCurrentUser(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientAccountService.Login").Msg("profile fetch after login failed")
	}

	return nil
}

func (s *clientAccountService) Logout(ctx context.Context) error {
	s.store.Logout()
	s.logger.Info().Str("func", "clientAccountService.Logout").Msg("logged out")

	return s.persister.save(ctx)
}

func (s *clientAccountService) FetchCurrentUser(ctx context.Context) error {
	ticket, ok := s.store.FetchStarted()
	if !ok {
		return app.NewError(app.KindAuthFailure, app.MsgNotLoggedIn, nil)
	}

	user, err := s.adapter.FetchCurrentUser(ctx, ticket.Token)
	if err != nil {
		if !s.store.FetchFailed(ticket, err) {
			s.logger.Debug().Str("func", "clientAccountService.FetchCurrentUser").Msg("stale fetch failure dropped")
		}
		s.logger.Err(err).Str("func", "clientAccountService.FetchCurrentUser").Msg("fetch current user failed")
		return err
	}

	logoURL, applied := s.store.FetchSucceeded(ticket, user)
	if !applied {
		s.logger.Debug().Str("func", "clientAccountService.FetchCurrentUser").Msg("session changed during fetch, result dropped")
		return nil
	}

	if logoURL != "" && !s.logos.Enqueue(logoURL) {
		s.logger.Warn().Str("func", "clientAccountService.FetchCurrentUser").Str("url", logoURL).Msg("logo task was not enqueued")
	}

	return nil
}

func (s *clientAccountService) SaveLocalProfile(ctx context.Context, local models.LocalProfile) error {
	if s.store.Snapshot().HasServerRank() {
		return app.InvalidInput(app.MsgProfileNotEditable)
	}

	local.Name = strings.TrimSpace(local.Name)
	local.School = strings.TrimSpace(local.School)
	local.Belt = models.Belt(strings.TrimSpace(string(local.Belt)))
	if !local.Belt.IsZero() && !local.Belt.Valid() {
		return app.InvalidInput(app.MsgUnknownBelt)
	}
	local.Dan = local.Belt.Dan()

	s.store.SetLocalProfile(local)

	return s.persister.save(ctx)
}

func (s *clientAccountService) Account() models.Account {
	return s.store.Snapshot()
}

func (s *clientAccountService) Display() profile.DisplayProfile {
	return profile.Reconcile(s.store.Snapshot())
}

// persist saves the account slice. Storage failures are logged and never
// undo the state change that triggered them.
func (s *clientAccountService) persist(ctx context.Context, funcName string) {
	if err := s.persister.save(ctx); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("failed to persist account")
	}
}
