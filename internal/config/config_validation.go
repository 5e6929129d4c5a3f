// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Cache.LogoDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.LogoQueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Seed.Email == "" || cfg.Seed.Password == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
