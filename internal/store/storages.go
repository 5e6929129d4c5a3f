// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	PersistedState PersistedStateRepository
	Theory         TheoryRepository
	Training       TrainingRepository

	db *DB
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN, runs pending
// migrations and wires the repositories to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		PersistedState: NewPersistedStateRepository(db, logger),
		Theory:         NewTheoryRepository(db, logger),
		Training:       NewTrainingRepository(db, logger),
		db:             db,
	}
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
