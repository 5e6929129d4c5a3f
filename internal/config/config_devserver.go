// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultDevServerAddress = "localhost:3000"
	defaultTokenIssuer      = "belt-keeper-dev"
	defaultTokenDuration    = 24 * time.Hour
)

// DevServerConfig is the configuration view of the development account
// service.
type DevServerConfig struct {
	Server Server
	Auth   Auth
	Seed   Seed
}

// GetDevServerConfig builds and validates the development account service
// configuration from the current process arguments.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(commandLineArgs())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := newDevServerConfig(cfg)
	return devCfg, devCfg.validate()
}

func newDevServerConfig(cfg *StructuredConfig) *DevServerConfig {
	devCfg := &DevServerConfig{
		Server: cfg.Server,
		Auth:   cfg.Auth,
		Seed:   cfg.Seed,
	}

	if devCfg.Server.HTTPAddress == "" {
		devCfg.Server.HTTPAddress = defaultDevServerAddress
	}
	if devCfg.Server.RequestTimeout == 0 {
		devCfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if devCfg.Auth.TokenIssuer == "" {
		devCfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if devCfg.Auth.TokenDuration == 0 {
		devCfg.Auth.TokenDuration = defaultTokenDuration
	}

	return devCfg
}
