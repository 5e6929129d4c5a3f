// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultLogoQueueSize  = 8
	appDirName            = "belt-keeper"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the account service base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientCache contains file cache settings.
type ClientCache struct {
	// LogoDir is the school logo cache directory.
	LogoDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Cache ClientCache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// LogoQueueSize is the capacity of the logo download queue.
	LogoQueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration of the current process arguments.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(commandLineArgs())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{Version: cfg.App.Version},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Cache: ClientCache{LogoDir: cfg.Storage.Cache.LogoDir},
		},
		Workers: ClientWorkers{LogoQueueSize: cfg.Workers.LogoQueueSize},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.LogoQueueSize == 0 {
		clientCfg.Workers.LogoQueueSize = defaultLogoQueueSize
	}
	if clientCfg.Storage.Cache.LogoDir == "" {
		clientCfg.Storage.Cache.LogoDir = defaultLogoDir()
	}

	return clientCfg
}

func defaultLogoDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appDirName, "logos")
}
