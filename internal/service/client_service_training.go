// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
	"github.com/MKhiriev/go-belt-keeper/models"
)

type clientTrainingService struct {
	repo store.TrainingRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewClientTrainingService wires training progress to repo.
func NewClientTrainingService(repo store.TrainingRepository, logger *logger.Logger) ClientTrainingService {
	return &clientTrainingService{repo: repo, now: time.Now, logger: logger}
}

func (t *clientTrainingService) MarkRead(ctx context.Context, contentID string, read bool) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return app.InvalidInput(app.MsgEmptyContentID)
	}

	if err := t.repo.SetRead(ctx, contentID, read); err != nil {
		return fmt.Errorf("mark training read: %w", err)
	}
	return nil
}

func (t *clientTrainingService) SetProgress(ctx context.Context, contentID string, percent int) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return app.InvalidInput(app.MsgEmptyContentID)
	}
	if percent < 0 || percent > 100 {
		return app.InvalidInput(app.MsgInvalidProgress)
	}

	if err := t.repo.SetPercent(ctx, contentID, percent); err != nil {
		return fmt.Errorf("save training progress: %w", err)
	}
	return nil
}

func (t *clientTrainingService) Progress(ctx context.Context) ([]models.TrainingProgress, error) {
	progress, err := t.repo.Progress(ctx)
	if err != nil {
		return nil, fmt.Errorf("load training progress: %w", err)
	}
	return progress, nil
}

func (t *clientTrainingService) Reset(ctx context.Context) error {
	if err := t.repo.ResetProgress(ctx); err != nil {
		return fmt.Errorf("reset training progress: %w", err)
	}
	return nil
}

func (t *clientTrainingService) AddRecord(ctx context.Context, data json.RawMessage) (models.TrainingRecord, error) {
	if len(data) > 0 && !json.Valid(data) {
		return models.TrainingRecord{}, app.InvalidInput(app.MsgInvalidRecordData)
	}

	record := models.TrainingRecord{ID: utils.NewID(), Timestamp: t.now().UTC(), Data: data}
	if err := t.repo.AddRecord(ctx, record); err != nil {
		return models.TrainingRecord{}, fmt.Errorf("save training record: %w", err)
	}

	t.logger.Debug().Str("func", "clientTrainingService.AddRecord").Str("id", record.ID).Msg("training record saved")
	return record, nil
}

func (t *clientTrainingService) Records(ctx context.Context) ([]models.TrainingRecord, error) {
	records, err := t.repo.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load training records: %w", err)
	}
	return records, nil
}

func (t *clientTrainingService) ClearRecords(ctx context.Context) error {
	if err := t.repo.ClearRecords(ctx); err != nil {
		return fmt.Errorf("clear training records: %w", err)
	}
	return nil
}
