// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
	"github.com/MKhiriev/go-belt-keeper/models"
)

type clientTheoryService struct {
	repo store.TheoryRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewClientTheoryService wires theory progress to repo.
func NewClientTheoryService(repo store.TheoryRepository, logger *logger.Logger) ClientTheoryService {
	return &clientTheoryService{repo: repo, now: time.Now, logger: logger}
}

func (t *clientTheoryService) MarkRead(ctx context.Context, contentID string, read bool) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return app.InvalidInput(app.MsgEmptyContentID)
	}

	if err := t.repo.SetRead(ctx, contentID, read); err != nil {
		return fmt.Errorf("mark theory read: %w", err)
	}
	return nil
}

func (t *clientTheoryService) ReadState(ctx context.Context) (map[string]bool, error) {
	state, err := t.repo.ReadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("load theory read state: %w", err)
	}
	return state, nil
}

func (t *clientTheoryService) AddScore(ctx context.Context, score int) (models.TheoryScore, error) {
	if score < 0 || score > 100 {
		return models.TheoryScore{}, app.InvalidInput(app.MsgInvalidScore)
	}

	entry := models.TheoryScore{ID: utils.NewID(), Score: score, Date: t.now().UTC()}
	if err := t.repo.AddScore(ctx, entry); err != nil {
		return models.TheoryScore{}, fmt.Errorf("save theory score: %w", err)
	}

	t.logger.Debug().Str("func", "clientTheoryService.AddScore").Int("score", score).Msg("theory score saved")
	return entry, nil
}

func (t *clientTheoryService) Scores(ctx context.Context) ([]models.TheoryScore, error) {
	scores, err := t.repo.Scores(ctx)
	if err != nil {
		return nil, fmt.Errorf("load theory scores: %w", err)
	}
	return scores, nil
}

func (t *clientTheoryService) ClearScores(ctx context.Context) error {
	if err := t.repo.ClearScores(ctx); err != nil {
		return fmt.Errorf("clear theory scores: %w", err)
	}
	return nil
}
