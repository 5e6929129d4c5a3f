// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// TheoryScore is one finished theory test.
type TheoryScore struct {
	ID    string    `json:"id"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// TrainingProgress is the read flag and completion percentage of one training
// content module.
type TrainingProgress struct {
	ContentID string `json:"contentId"`
	Read      bool   `json:"read"`
	Percent   int    `json:"percent"`
}

// TrainingRecord is a finished training session. Data is an opaque payload
// owned by the training screen.
type TrainingRecord struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}
