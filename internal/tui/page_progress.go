// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const maxScoresShown = 5

// ProgressModel lists theory scores and training progress.
type ProgressModel struct {
	ctx      context.Context
	theory   service.ClientTheoryService
	training service.ClientTrainingService

	loading  bool
	scores   []models.TheoryScore
	progress []models.TrainingProgress
	records  int
	errMsg   string
}

// NewProgressModel creates the progress page.
func NewProgressModel(ctx context.Context, theory service.ClientTheoryService, training service.ClientTrainingService) *ProgressModel {
	return &ProgressModel{ctx: ctx, theory: theory, training: training}
}

// Init implements [tea.Model]. Progress is reloaded on every visit.
func (m *ProgressModel) Init() tea.Cmd {
	if m.theory == nil || m.training == nil {
		return nil
	}
	m.loading = true
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		m.loading = false
		m.errMsg = errorText(msg.err)
		if msg.err == nil {
			m.scores, m.progress, m.records = msg.scores, msg.progress, msg.records
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			return m, navigate(pageAccount)
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *ProgressModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	default:
		b.WriteString(titleStyle.Render("Theory tests"))
		b.WriteString("\n")
		if len(m.scores) == 0 {
			b.WriteString("  no tests taken\n")
		}
		for i, s := range m.scores {
			if i == maxScoresShown {
				fmt.Fprintf(&b, "  … %d more\n", len(m.scores)-maxScoresShown)
				break
			}
			fmt.Fprintf(&b, "  %s  %3d%%\n", s.Date.Local().Format("2006-01-02 15:04"), s.Score)
		}

		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Training"))
		b.WriteString("\n")
		if len(m.progress) == 0 {
			b.WriteString("  nothing started\n")
		}
		for _, p := range m.progress {
			read := " "
			if p.Read {
				read = "✓"
			}
			fmt.Fprintf(&b, "  [%s] %-24s %3d%%\n", read, p.ContentID, p.Percent)
		}
		fmt.Fprintf(&b, "\n  sessions recorded: %d", m.records)
	}

	return renderPage("PROGRESS", b.String(), "r: reload │ esc: back")
}

func (m *ProgressModel) cmdLoad() tea.Cmd {
	ctx, theory, training := m.ctx, m.theory, m.training
	return func() tea.Msg {
		scores, err := theory.Scores(ctx)
		if err != nil {
			return progressLoadedMsg{err: err}
		}
		progress, err := training.Progress(ctx)
		if err != nil {
			return progressLoadedMsg{err: err}
		}
		records, err := training.Records(ctx)
		if err != nil {
			return progressLoadedMsg{err: err}
		}
		return progressLoadedMsg{scores: scores, progress: progress, records: len(records)}
	}
}
