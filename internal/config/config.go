// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the account service address and outbound timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database and the logo cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the development account service listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds token settings of the development account service.
	Auth Auth `envPrefix:"AUTH_"`

	// Seed describes the single user the development account service starts
	// with.
	Seed Seed `envPrefix:"SEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the application version shown in the build info window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the outbound account service client.
type Adapter struct {
	// HTTPAddress is the base address of the account service
	// (e.g. "http://10.0.2.2:3000" or "localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every login, profile and logo request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the file cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the local SQLite settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cache holds file cache settings.
type Cache struct {
	// LogoDir is the directory downloaded school logos are stored in.
	// Env: STORAGE_CACHE_LOGO_DIR
	LogoDir string `env:"LOGO_DIR"`
}

// Workers holds background worker settings.
type Workers struct {
	// LogoQueueSize is the capacity of the logo download task queue.
	// Env: WORKERS_LOGO_QUEUE_SIZE
	LogoQueueSize int `env:"LOGO_QUEUE_SIZE"`
}

// Server holds development account service listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds token settings of the development account service.
type Auth struct {
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Seed describes the development user.
type Seed struct {
	Email    string `env:"EMAIL" json:"email"`
	Password string `env:"PASSWORD" json:"password"`
	FullName string `env:"FULL_NAME" json:"full_name"`
	Address  string `env:"ADDRESS" json:"address"`
	School   string `env:"SCHOOL" json:"school"`
	LogoURL  string `env:"LOGO_URL" json:"logo_url"`
	Belt     string `env:"BELT" json:"belt"`
	// IsMaster and IsGrandmaster are the seed user's title flags.
	IsMaster      bool `env:"IS_MASTER" json:"is_master"`
	IsGrandmaster bool `env:"IS_GRANDMASTER" json:"is_grandmaster"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
