// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/models"
)

type theoryRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTheoryRepository returns a SQLite-backed [TheoryRepository].
func NewTheoryRepository(db *DB, logger *logger.Logger) TheoryRepository {
	return &theoryRepository{db: db, logger: logger, now: time.Now}
}

func (r *theoryRepository) SetRead(ctx context.Context, contentID string, read bool) error {
	return r.db.exec(ctx, "theoryRepository.SetRead", func() (string, []any, error) {
		return buildUpsertTheoryReadQuery(contentID, read, r.now().UTC())
	})
}

func (r *theoryRepository) ReadState(ctx context.Context) (map[string]bool, error) {
	state := make(map[string]bool)
	err := r.db.query(ctx, "theoryRepository.ReadState", buildSelectTheoryReadQuery, func(rows *sql.Rows) error {
		var (
			id   string
			read bool
		)
		if err := rows.Scan(&id, &read); err != nil {
			return err
		}
		state[id] = read
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (r *theoryRepository) AddScore(ctx context.Context, score models.TheoryScore) error {
	return r.db.exec(ctx, "theoryRepository.AddScore", func() (string, []any, error) {
		return buildInsertTheoryScoreQuery(score)
	})
}

func (r *theoryRepository) Scores(ctx context.Context) ([]models.TheoryScore, error) {
	var scores []models.TheoryScore
	err := r.db.query(ctx, "theoryRepository.Scores", buildSelectTheoryScoresQuery, func(rows *sql.Rows) error {
		var s models.TheoryScore
		if err := rows.Scan(&s.ID, &s.Score, &s.Date); err != nil {
			return err
		}
		scores = append(scores, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return scores, nil
}

func (r *theoryRepository) ClearScores(ctx context.Context) error {
	return r.db.exec(ctx, "theoryRepository.ClearScores", buildClearTheoryScoresQuery)
}
