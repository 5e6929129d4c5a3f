// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local persistence on SQLite.
//
// The schema lives in the migrations package and is applied on open. Queries
// are built with squirrel using "?" placeholders.
package store

import (
	"context"

	"github.com/MKhiriev/go-belt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PersistedStateRepository stores opaque payloads under stable namespaces.
type PersistedStateRepository interface {
	// Get returns the payload stored under namespace, or
	// [ErrPersistedStateNotFound].
	Get(ctx context.Context, namespace string) ([]byte, error)
	// Set creates or replaces the payload stored under namespace.
	Set(ctx context.Context, namespace string, payload []byte) error
	// Remove deletes namespace. Removing a missing namespace is not an error.
	Remove(ctx context.Context, namespace string) error
}

// TheoryRepository stores theory reading flags and test scores.
type TheoryRepository interface {
	SetRead(ctx context.Context, contentID string, read bool) error
	ReadState(ctx context.Context) (map[string]bool, error)
	// AddScore appends a finished test.
	AddScore(ctx context.Context, score models.TheoryScore) error
	// Scores lists finished tests, newest first.
	Scores(ctx context.Context) ([]models.TheoryScore, error)
	ClearScores(ctx context.Context) error
}

// TrainingRepository stores training progress and finished sessions.
type TrainingRepository interface {
	SetRead(ctx context.Context, contentID string, read bool) error
	SetPercent(ctx context.Context, contentID string, percent int) error
	// Progress lists progress entries ordered by content id.
	Progress(ctx context.Context) ([]models.TrainingProgress, error)
	ResetProgress(ctx context.Context) error
	AddRecord(ctx context.Context, record models.TrainingRecord) error
	// Records lists finished sessions, newest first.
	Records(ctx context.Context) ([]models.TrainingRecord, error)
	ClearRecords(ctx context.Context) error
}
