// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business operations. Services drive
// the [state.AccountStore] reducers, talk to the account service through the
// adapter layer and persist through the store layer.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-belt-keeper/internal/profile"
	"github.com/MKhiriev/go-belt-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAccountService defines login, logout, profile fetching and local
// profile editing.
type ClientAccountService interface {
	// Login validates the credentials, exchanges them for a token, persists
	// the token and then fetches the current user. Only a failed login is
	// returned; a failed follow-up fetch is recorded in the session.
	Login(ctx context.Context, email, password string) error

	// Logout clears the server profile and the session. Local edits survive
	// and stay persisted.
	Logout(ctx context.Context) error

	// FetchCurrentUser refreshes the server profile with the stored token and
	// enqueues a logo download when the school carries a logo URL.
	FetchCurrentUser(ctx context.Context) error

	// SaveLocalProfile stores the locally entered profile. It fails with an
	// invalid-input error while the server holds rank data or when the belt
	// token is unknown.
	SaveLocalProfile(ctx context.Context, local models.LocalProfile) error

	// Account returns a snapshot of the account.
	Account() models.Account

	// Display returns the reconciled profile of the current snapshot.
	Display() profile.DisplayProfile
}

// ClientBootstrapService runs the start-up sequence.
type ClientBootstrapService interface {
	// Restore loads the persisted token and local profile into the store.
	Restore(ctx context.Context) error

	// Bootstrap fetches the current user when a persisted token exists.
	Bootstrap(ctx context.Context) error
}

// ClientLogoService resolves the school logo into the local cache.
type ClientLogoService interface {
	// SyncLogo downloads logoURL if needed and records its path on the
	// account while the URL is still current.
	SyncLogo(ctx context.Context, logoURL string) (string, error)

	// HandleTask is the logo worker entry point. Errors are logged.
	HandleTask(ctx context.Context, logoURL string)
}

// ClientTheoryService tracks theory reading and test scores.
type ClientTheoryService interface {
	MarkRead(ctx context.Context, contentID string, read bool) error
	ReadState(ctx context.Context) (map[string]bool, error)
	// AddScore records a finished test. score must be within 0..100.
	AddScore(ctx context.Context, score int) (models.TheoryScore, error)
	// Scores lists finished tests, newest first.
	Scores(ctx context.Context) ([]models.TheoryScore, error)
	ClearScores(ctx context.Context) error
}

// ClientTrainingService tracks training progress and finished sessions.
type ClientTrainingService interface {
	MarkRead(ctx context.Context, contentID string, read bool) error
	// SetProgress stores the completion of contentID. percent must be within
	// 0..100.
	SetProgress(ctx context.Context, contentID string, percent int) error
	Progress(ctx context.Context) ([]models.TrainingProgress, error)
	Reset(ctx context.Context) error
	AddRecord(ctx context.Context, data json.RawMessage) (models.TrainingRecord, error)
	// Records lists finished sessions, newest first.
	Records(ctx context.Context) ([]models.TrainingRecord, error)
	ClearRecords(ctx context.Context) error
}

// LogoCache resolves a logo URL to a cached file.
type LogoCache interface {
	FetchOrDownload(ctx context.Context, logoURL string) (string, error)
}

// LogoQueue accepts logo download tasks without blocking.
type LogoQueue interface {
	Enqueue(logoURL string) bool
}
