// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "localhost:3000"},
		Storage: Storage{DB: DB{DSN: "account.db"}},
	})
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultLogoQueueSize, cfg.Workers.LogoQueueSize)
	assert.NotEmpty(t, cfg.Storage.Cache.LogoDir)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "empty logo dir", mutate: func(c *ClientConfig) { c.Storage.Cache.LogoDir = "" }, want: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second }, want: ErrInvalidAdapterConfigs},
		{name: "zero queue", mutate: func(c *ClientConfig) { c.Workers.LogoQueueSize = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestNewDevServerConfig_DefaultsAndValidation(t *testing.T) {
	cfg := newDevServerConfig(&StructuredConfig{})
	assert.Equal(t, defaultDevServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.Auth.TokenDuration)
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = newDevServerConfig(&StructuredConfig{
		Auth: Auth{TokenSignKey: "secret"},
		Seed: Seed{Email: "a@b.com", Password: "x"},
	})
	require.NoError(t, cfg.validate())
}
