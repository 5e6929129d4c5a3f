// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-belt-keeper/internal/adapter"
	"github.com/MKhiriev/go-belt-keeper/internal/client"
	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/logocache"
	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/internal/tui"
	"github.com/MKhiriev/go-belt-keeper/internal/workers"
	"github.com/MKhiriev/go-belt-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("belt-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	accountAdapter, err := adapter.NewHTTPAccountAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create account adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	logos := logocache.NewManager(cfg.Storage.Cache.LogoDir, adapter.NewHTTPAssetAdapter(cfg.Adapter, log), log)

	var logoWorker *workers.LogoWorker
	services := service.NewClientServices(service.ClientDeps{
		Store:    state.NewAccountStore(),
		Adapter:  accountAdapter,
		Storages: localStorage,
		Logos:    logos,
		Logger:   log,
	}, func(logoSvc service.ClientLogoService) service.LogoQueue {
		logoWorker = workers.NewLogoWorker(cfg.Workers, logoSvc.HandleTask, log)
		return logoWorker
	})

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services.BootstrapService, ui, workers.NewWorkers(logoWorker), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
