// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
)

type persistedStateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPersistedStateRepository returns a SQLite-backed [PersistedStateRepository].
func NewPersistedStateRepository(db *DB, logger *logger.Logger) PersistedStateRepository {
	return &persistedStateRepository{db: db, logger: logger, now: time.Now}
}

func (r *persistedStateRepository) Get(ctx context.Context, namespace string) ([]byte, error) {
	query, args, err := buildGetPersistedStateQuery(namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersistedStateNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "persistedStateRepository.Get").
			Str("namespace", namespace).
			Msg("failed to read persisted state")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return []byte(payload), nil
}

func (r *persistedStateRepository) Set(ctx context.Context, namespace string, payload []byte) error {
	query, args, err := buildUpsertPersistedStateQuery(namespace, payload, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "persistedStateRepository.Set").
			Str("namespace", namespace).
			Msg("failed to upsert persisted state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *persistedStateRepository) Remove(ctx context.Context, namespace string) error {
	query, args, err := buildDeletePersistedStateQuery(namespace)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "persistedStateRepository.Remove").
			Str("namespace", namespace).
			Msg("failed to delete persisted state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
