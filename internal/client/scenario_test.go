// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/adapter"
	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/devserver"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/logocache"
	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/internal/workers"
	"github.com/MKhiriev/go-belt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientStack struct {
	store    *state.AccountStore
	services *service.ClientServices
	workers  *workers.Workers
	storages *store.ClientStorages
}

func startDevServer(t *testing.T, logoHits *atomic.Int32) *httptest.Server {
	t.Helper()

	users, err := devserver.NewUsers(config.Seed{
		Email:    "jane@example.com",
		Password: "kihap",
		FullName: "Jane Doe",
		School:   "Central Dojang",
		LogoURL:  devserver.LogoPath,
		Belt:     "black_2",
		IsMaster: true,
	})
	require.NoError(t, err)
	h, err := devserver.NewHandler(users, devserver.NewTokens(config.Auth{
		TokenSignKey:  "secret",
		TokenIssuer:   "test",
		TokenDuration: time.Hour,
	}), logger.Nop())
	require.NoError(t, err)

	router := h.Init()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == devserver.LogoPath {
			logoHits.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClientStack(t *testing.T, ctx context.Context, serverURL, dir string) *clientStack {
	t.Helper()
	log := logger.Nop()

	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	accountAdapter, err := adapter.NewHTTPAccountAdapter(adapterCfg, log)
	require.NoError(t, err)

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(dir, "client.db")},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	accountStore := state.NewAccountStore()
	var logoWorker *workers.LogoWorker
	services := service.NewClientServices(service.ClientDeps{
		Store:    accountStore,
		Adapter:  accountAdapter,
		Storages: storages,
		Logos:    logocache.NewManager(filepath.Join(dir, "logos"), adapter.NewHTTPAssetAdapter(adapterCfg, log), log),
		Logger:   log,
	}, func(logoSvc service.ClientLogoService) service.LogoQueue {
		logoWorker = workers.NewLogoWorker(config.ClientWorkers{LogoQueueSize: 4}, logoSvc.HandleTask, log)
		return logoWorker
	})

	w := workers.NewWorkers(logoWorker)
	w.Run(ctx)
	t.Cleanup(w.Stop)

	return &clientStack{store: accountStore, services: services, workers: w, storages: storages}
}

func TestScenario_LoginFetchDisplayAndCachedLogo(t *testing.T) {
	ctx := context.Background()
	var logoHits atomic.Int32
	srv := startDevServer(t, &logoHits)
	dir := t.TempDir()

	c := newClientStack(t, ctx, srv.URL, dir)
	account := c.services.AccountService

	require.NoError(t, c.services.BootstrapService.Restore(ctx))
	require.NoError(t, c.services.BootstrapService.Bootstrap(ctx))
	assert.Equal(t, models.AuthLoggedOut, account.Account().Session.AuthState())

	require.NoError(t, account.Login(ctx, "jane@example.com", "kihap"))

	a := account.Account()
	assert.Equal(t, models.AuthLoggedIn, a.Session.AuthState())
	assert.Equal(t, models.FetchFetched, a.Session.Fetch)
	assert.False(t, a.Editable())

	p := account.Display()
	assert.Equal(t, "Jane Doe's details", p.Title())
	assert.Equal(t, "Master", p.RankTitle())
	assert.Equal(t, "Black Belt (2nd Dan)", p.BeltText())
	assert.Equal(t, 2, p.Dan)

	require.Eventually(t, func() bool {
		return account.Account().Server.SchoolLogoPath != ""
	}, 5*time.Second, 10*time.Millisecond)

	logoPath := account.Account().Server.SchoolLogoPath
	info, err := os.Stat(logoPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Equal(t, logocache.FileName(srv.URL+devserver.LogoPath), filepath.Base(logoPath))

	// a second fetch with the same logo URL keeps the cached file
	require.NoError(t, account.FetchCurrentUser(ctx))
	assert.Equal(t, logoPath, account.Account().Server.SchoolLogoPath)
	assert.Equal(t, int32(1), logoHits.Load())
}

func TestScenario_RestartRestoresSession(t *testing.T) {
	ctx := context.Background()
	var logoHits atomic.Int32
	srv := startDevServer(t, &logoHits)
	dir := t.TempDir()

	first := newClientStack(t, ctx, srv.URL, dir)
	require.NoError(t, first.services.AccountService.Login(ctx, "jane@example.com", "kihap"))
	require.Eventually(t, func() bool {
		return first.store.Snapshot().Server.SchoolLogoPath != ""
	}, 5*time.Second, 10*time.Millisecond)
	first.workers.Stop()
	require.NoError(t, first.storages.Close())

	second := newClientStack(t, ctx, srv.URL, dir)
	require.NoError(t, second.services.BootstrapService.Restore(ctx))

	restored := second.store.Snapshot()
	assert.NotEmpty(t, restored.Session.Token)
	assert.Empty(t, restored.Server.FullName)

	require.NoError(t, second.services.BootstrapService.Bootstrap(ctx))
	assert.Equal(t, "Jane Doe", second.store.Snapshot().Server.FullName)

	// the logo is already on disk, so no new download happens
	require.Eventually(t, func() bool {
		return second.store.Snapshot().Server.SchoolLogoPath != ""
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), logoHits.Load())
}

func TestScenario_RejectedLoginAndLocalProfile(t *testing.T) {
	ctx := context.Background()
	var logoHits atomic.Int32
	srv := startDevServer(t, &logoHits)

	c := newClientStack(t, ctx, srv.URL, t.TempDir())
	account := c.services.AccountService

	err := account.Login(ctx, "jane@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", account.Account().Session.Error)

	require.NoError(t, account.SaveLocalProfile(ctx, models.LocalProfile{Name: "Janie", Belt: "black_3"}))
	p := account.Display()
	assert.Equal(t, "Janie", p.Name)
	assert.Equal(t, 3, p.Dan)
	assert.Empty(t, p.RankTitle())

	require.NoError(t, account.Login(ctx, "jane@example.com", "kihap"))
	assert.Equal(t, "Jane Doe", account.Display().Name)

	require.NoError(t, account.Logout(ctx))
	assert.Equal(t, "Janie", account.Display().Name)
	assert.Equal(t, models.AuthLoggedOut, account.Account().Session.AuthState())
}
