// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-belt-keeper/models"
)

// NavigateTo switches [RootModel] to Page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type loginResultMsg struct {
	err error
}

type fetchResultMsg struct {
	err error
}

type logoutResultMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type progressLoadedMsg struct {
	scores   []models.TheoryScore
	progress []models.TrainingProgress
	records  int
	err      error
}

type tickMsg time.Time
