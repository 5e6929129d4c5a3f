// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	raw := `{
		"app": {"version": "1.2.3"},
		"adapter": {"http_address": "localhost:3000", "request_timeout": "10s"},
		"storage": {"db": {"dsn": "account.db"}, "cache": {"logo_dir": "/tmp/logos"}},
		"workers": {"logo_queue_size": 2},
		"server": {"http_address": ":3000", "request_timeout": 5000000000},
		"auth": {"token_sign_key": "k", "token_issuer": "i", "token_duration": "2h"},
		"seed": {"email": "a@b.com", "password": "x", "belt": "black_2", "is_master": true}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "account.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/logos", cfg.Storage.Cache.LogoDir)
	assert.Equal(t, 2, cfg.Workers.LogoQueueSize)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "k", cfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "a@b.com", cfg.Seed.Email)
	assert.Equal(t, "black_2", cfg.Seed.Belt)
	assert.True(t, cfg.Seed.IsMaster)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
