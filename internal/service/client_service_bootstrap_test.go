// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/mock"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBootstrapSvc(ctrl *gomock.Controller) (ClientBootstrapService, *state.AccountStore, *mock.MockPersistedStateRepository, *mock.MockClientAccountService) {
	accountStore := state.NewAccountStore()
	repo := mock.NewMockPersistedStateRepository(ctrl)
	account := mock.NewMockClientAccountService(ctrl)

	return NewClientBootstrapService(accountStore, repo, account, logger.Nop()), accountStore, repo, account
}

func TestClientBootstrapService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accountStore, repo, _ := newTestBootstrapSvc(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, AccountNamespace).
		Return([]byte(`{"token":"abc","local":{"name":"Alice","belt":"blue"}}`), nil)

	require.NoError(t, svc.Restore(ctx))

	a := accountStore.Snapshot()
	assert.Equal(t, "abc", a.Session.Token)
	assert.Equal(t, models.LocalProfile{Name: "Alice", Belt: "blue"}, a.Local)
	assert.Equal(t, models.ServerProfile{}, a.Server)
}

func TestClientBootstrapService_Restore_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accountStore, repo, _ := newTestBootstrapSvc(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, AccountNamespace).Return(nil, store.ErrPersistedStateNotFound)

	require.NoError(t, svc.Restore(ctx))
	assert.Equal(t, models.Account{}, accountStore.Snapshot())
}

func TestClientBootstrapService_Restore_CorruptPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accountStore, repo, _ := newTestBootstrapSvc(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, AccountNamespace).Return([]byte(`{not json`), nil)

	err := svc.Restore(ctx)

	require.Error(t, err)
	assert.Equal(t, models.Account{}, accountStore.Snapshot())
}

func TestClientBootstrapService_Bootstrap_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, account := newTestBootstrapSvc(ctrl)

	account.EXPECT().FetchCurrentUser(gomock.Any()).Times(0)

	require.NoError(t, svc.Bootstrap(context.Background()))
}

func TestClientBootstrapService_Bootstrap_WithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accountStore, _, account := newTestBootstrapSvc(ctrl)
	ctx := context.Background()
	accountStore.Restore(models.PersistedAccount{Token: "abc"})

	account.EXPECT().FetchCurrentUser(ctx).Return(nil)

	require.NoError(t, svc.Bootstrap(ctx))
}

func TestClientBootstrapService_Bootstrap_FetchFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accountStore, _, account := newTestBootstrapSvc(ctrl)
	ctx := context.Background()
	accountStore.Restore(models.PersistedAccount{Token: "abc"})

	account.EXPECT().FetchCurrentUser(ctx).Return(app.NewError(app.KindNetworkFailure, app.MsgNetworkError, nil))

	err := svc.Bootstrap(ctx)

	assert.ErrorIs(t, err, app.ErrNetworkFailure)
	assert.Equal(t, "abc", accountStore.Snapshot().Session.Token)
}
