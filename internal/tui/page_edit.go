// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editFieldName = iota
	editFieldSchool
	editFieldBelt
	editFieldCount
)

// noBelt is the picker position meaning "no belt selected".
const noBelt = -1

// EditModel edits the local profile. It is seeded from the current local
// values on every visit; esc discards the changes.
type EditModel struct {
	ctx     context.Context
	account service.ClientAccountService

	name          textinput.Model
	school        textinput.Model
	belt          int
	isMaster      bool
	isGrandmaster bool

	focus      int
	submitting bool
	errMsg     string
}

// NewEditModel creates an [EditModel].
func NewEditModel(ctx context.Context, account service.ClientAccountService) *EditModel {
	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 128
	name.Width = 40

	school := textinput.New()
	school.Placeholder = "school"
	school.CharLimit = 128
	school.Width = 40

	return &EditModel{
		ctx:     ctx,
		account: account,
		name:    name,
		school:  school,
		belt:    noBelt,
	}
}

// Init implements [tea.Model].
func (m *EditModel) Init() tea.Cmd {
	local := m.account.Account().Local

	m.name.SetValue(local.Name)
	m.school.SetValue(local.School)
	m.belt = beltIndex(local.Belt)
	m.isMaster = local.IsMaster
	m.isGrandmaster = local.IsGrandmaster
	m.errMsg = ""
	m.submitting = false
	m.setFocus(editFieldName)

	return textinput.Blink
}

// Update implements [tea.Model].
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(profileSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageAccount, Payload: profileSavedMsg{}} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageAccount)
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % editFieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + editFieldCount) % editFieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.master):
			m.isMaster = !m.isMaster
			return m, nil
		case key.Matches(keyMsg, keys.grand):
			m.isGrandmaster = !m.isGrandmaster
			return m, nil
		case m.focus == editFieldBelt && key.Matches(keyMsg, keys.left):
			if m.belt > noBelt {
				m.belt--
			}
			return m, nil
		case m.focus == editFieldBelt && key.Matches(keyMsg, keys.right):
			if m.belt < len(models.Belts)-1 {
				m.belt++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(m.local())
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case editFieldName:
		m.name, cmd = m.name.Update(msg)
	case editFieldSchool:
		m.school, cmd = m.school.Update(msg)
	}
	return m, cmd
}

// View implements [tea.Model].
func (m *EditModel) View() string {
	var b strings.Builder
	b.WriteString(field("Name", m.name.View()))
	b.WriteString("\n")
	b.WriteString(field("School", m.school.View()))
	b.WriteString("\n")

	beltLabel := "none"
	if m.belt != noBelt {
		beltLabel = models.Belts[m.belt].Label
	}
	if m.focus == editFieldBelt {
		beltLabel = "< " + beltLabel + " >"
	}
	b.WriteString(field("Belt", beltLabel))
	b.WriteString("\n")
	b.WriteString(field("Master", checkbox(m.isMaster)))
	b.WriteString("\n")
	b.WriteString(field("Grand", checkbox(m.isGrandmaster)))
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("[Saving...]")
	} else {
		b.WriteString("[Save]")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("EDIT PROFILE", b.String(),
		"esc: cancel │ tab: next field │ ←/→: belt │ ctrl+t: master │ ctrl+g: grand master │ enter: save")
}

func (m *EditModel) local() models.LocalProfile {
	local := models.LocalProfile{
		Name:          strings.TrimSpace(m.name.Value()),
		School:        strings.TrimSpace(m.school.Value()),
		IsMaster:      m.isMaster,
		IsGrandmaster: m.isGrandmaster,
	}
	if m.belt != noBelt {
		local.Belt = models.Belts[m.belt].Value
	}
	return local
}

func (m *EditModel) cmdSave(local models.LocalProfile) tea.Cmd {
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		return profileSavedMsg{err: account.SaveLocalProfile(ctx, local)}
	}
}

func (m *EditModel) setFocus(i int) {
	m.name.Blur()
	m.school.Blur()
	m.focus = i

	switch i {
	case editFieldName:
		m.name.Focus()
	case editFieldSchool:
		m.school.Focus()
	}
}

func beltIndex(b models.Belt) int {
	for i, opt := range models.Belts {
		if opt.Value == b {
			return i
		}
	}
	return noBelt
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}
