// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/models"
)

type trainingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTrainingRepository returns a SQLite-backed [TrainingRepository].
func NewTrainingRepository(db *DB, logger *logger.Logger) TrainingRepository {
	return &trainingRepository{db: db, logger: logger}
}

func (r *trainingRepository) SetRead(ctx context.Context, contentID string, read bool) error {
	return r.db.exec(ctx, "trainingRepository.SetRead", func() (string, []any, error) {
		return buildUpsertTrainingReadQuery(contentID, read)
	})
}

func (r *trainingRepository) SetPercent(ctx context.Context, contentID string, percent int) error {
	return r.db.exec(ctx, "trainingRepository.SetPercent", func() (string, []any, error) {
		return buildUpsertTrainingPercentQuery(contentID, percent)
	})
}

func (r *trainingRepository) Progress(ctx context.Context) ([]models.TrainingProgress, error) {
	var progress []models.TrainingProgress
	err := r.db.query(ctx, "trainingRepository.Progress", buildSelectTrainingProgressQuery, func(rows *sql.Rows) error {
		var p models.TrainingProgress
		if err := rows.Scan(&p.ContentID, &p.Read, &p.Percent); err != nil {
			return err
		}
		progress = append(progress, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return progress, nil
}

func (r *trainingRepository) ResetProgress(ctx context.Context) error {
	return r.db.exec(ctx, "trainingRepository.ResetProgress", buildResetTrainingProgressQuery)
}

func (r *trainingRepository) AddRecord(ctx context.Context, record models.TrainingRecord) error {
	return r.db.exec(ctx, "trainingRepository.AddRecord", func() (string, []any, error) {
		return buildInsertTrainingRecordQuery(record)
	})
}

func (r *trainingRepository) Records(ctx context.Context) ([]models.TrainingRecord, error) {
	var records []models.TrainingRecord
	err := r.db.query(ctx, "trainingRepository.Records", buildSelectTrainingRecordsQuery, func(rows *sql.Rows) error {
		var (
			rec  models.TrainingRecord
			data sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &data); err != nil {
			return err
		}
		if data.Valid && data.String != "" {
			rec.Data = json.RawMessage(data.String)
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *trainingRepository) ClearRecords(ctx context.Context) error {
	return r.db.exec(ctx, "trainingRepository.ClearRecords", buildClearTrainingRecordsQuery)
}
