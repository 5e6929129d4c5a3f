// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-belt-keeper/models"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	tablePersistedState   = "persisted_state"
	tableTheoryRead       = "theory_read"
	tableTheoryScores     = "theory_scores"
	tableTrainingProgress = "training_progress"
	tableTrainingRecords  = "training_records"
)

// ── persisted state ──────────────────────────────────────────────────────────

func buildGetPersistedStateQuery(namespace string) (string, []any, error) {
	return sqlite.
		Select("payload").
		From(tablePersistedState).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}

func buildUpsertPersistedStateQuery(namespace string, payload []byte, now time.Time) (string, []any, error) {
	return sqlite.
		Insert(tablePersistedState).
		Columns("namespace", "payload", "updated_at").
		Values(namespace, string(payload), now).
		Suffix("ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeletePersistedStateQuery(namespace string) (string, []any, error) {
	return sqlite.
		Delete(tablePersistedState).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}

// ── theory ───────────────────────────────────────────────────────────────────

func buildUpsertTheoryReadQuery(contentID string, read bool, now time.Time) (string, []any, error) {
	return sqlite.
		Insert(tableTheoryRead).
		Columns("content_id", "read", "updated_at").
		Values(contentID, read, now).
		Suffix("ON CONFLICT(content_id) DO UPDATE SET read = excluded.read, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectTheoryReadQuery() (string, []any, error) {
	return sqlite.
		Select("content_id", "read").
		From(tableTheoryRead).
		OrderBy("content_id").
		ToSql()
}

func buildInsertTheoryScoreQuery(score models.TheoryScore) (string, []any, error) {
	return sqlite.
		Insert(tableTheoryScores).
		Columns("id", "score", "taken_at").
		Values(score.ID, score.Score, score.Date.UTC()).
		ToSql()
}

func buildSelectTheoryScoresQuery() (string, []any, error) {
	return sqlite.
		Select("id", "score", "taken_at").
		From(tableTheoryScores).
		OrderBy("taken_at DESC", "id DESC").
		ToSql()
}

func buildClearTheoryScoresQuery() (string, []any, error) {
	return sqlite.Delete(tableTheoryScores).ToSql()
}

// ── training ─────────────────────────────────────────────────────────────────

func buildUpsertTrainingReadQuery(contentID string, read bool) (string, []any, error) {
	return sqlite.
		Insert(tableTrainingProgress).
		Columns("content_id", "read").
		Values(contentID, read).
		Suffix("ON CONFLICT(content_id) DO UPDATE SET read = excluded.read").
		ToSql()
}

func buildUpsertTrainingPercentQuery(contentID string, percent int) (string, []any, error) {
	return sqlite.
		Insert(tableTrainingProgress).
		Columns("content_id", "percent").
		Values(contentID, percent).
		Suffix("ON CONFLICT(content_id) DO UPDATE SET percent = excluded.percent").
		ToSql()
}

func buildSelectTrainingProgressQuery() (string, []any, error) {
	return sqlite.
		Select("content_id", "read", "percent").
		From(tableTrainingProgress).
		OrderBy("content_id").
		ToSql()
}

func buildResetTrainingProgressQuery() (string, []any, error) {
	return sqlite.Delete(tableTrainingProgress).ToSql()
}

func buildInsertTrainingRecordQuery(record models.TrainingRecord) (string, []any, error) {
	var data any
	if len(record.Data) > 0 {
		data = string(record.Data)
	}

	return sqlite.
		Insert(tableTrainingRecords).
		Columns("id", "recorded_at", "data").
		Values(record.ID, record.Timestamp.UTC(), data).
		ToSql()
}

func buildSelectTrainingRecordsQuery() (string, []any, error) {
	return sqlite.
		Select("id", "recorded_at", "data").
		From(tableTrainingRecords).
		OrderBy("recorded_at DESC", "id DESC").
		ToSql()
}

func buildClearTrainingRecordsQuery() (string, []any, error) {
	return sqlite.Delete(tableTrainingRecords).ToSql()
}
