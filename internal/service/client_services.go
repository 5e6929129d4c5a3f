// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-belt-keeper/internal/adapter"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
)

// ClientServices groups every client service.
type ClientServices struct {
	AccountService   ClientAccountService
	BootstrapService ClientBootstrapService
	LogoService      ClientLogoService
	TheoryService    ClientTheoryService
	TrainingService  ClientTrainingService
}

// ClientDeps are the collaborators of [ClientServices].
type ClientDeps struct {
	Store    *state.AccountStore
	Adapter  adapter.AccountAdapter
	Storages *store.ClientStorages
	Logos    LogoCache
	Logger   *logger.Logger
}

// NewClientServices builds the services. The logo service is built first so
// its HandleTask can feed the queue returned by newQueue, which the account
// service then enqueues into.
func NewClientServices(deps ClientDeps, newQueue func(ClientLogoService) LogoQueue) *ClientServices {
	logoSvc := NewClientLogoService(deps.Store, deps.Logos, deps.Logger)
	accountSvc := NewClientAccountService(deps.Store, deps.Adapter, deps.Storages.PersistedState, newQueue(logoSvc), deps.Logger)

	return &ClientServices{
		AccountService:   accountSvc,
		BootstrapService: NewClientBootstrapService(deps.Store, deps.Storages.PersistedState, accountSvc, deps.Logger),
		LogoService:      logoSvc,
		TheoryService:    NewClientTheoryService(deps.Storages.Theory, deps.Logger),
		TrainingService:  NewClientTrainingService(deps.Storages.Training, deps.Logger),
	}
}
