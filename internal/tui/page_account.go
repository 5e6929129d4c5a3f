// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/service"
	"github.com/MKhiriev/go-belt-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// AccountModel shows the reconciled profile and the session state.
type AccountModel struct {
	ctx     context.Context
	account service.ClientAccountService

	spinner spinner.Model
	status  string
	errMsg  string
}

// NewAccountModel creates the account page.
func NewAccountModel(ctx context.Context, account service.ClientAccountService) *AccountModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &AccountModel{ctx: ctx, account: account, spinner: s}
}

// Init implements [tea.Model].
func (m *AccountModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements [tea.Model].
func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		m.errMsg = errorText(msg.err)
		return m, nil
	case logoutResultMsg:
		m.errMsg = errorText(msg.err)
		if msg.err == nil {
			m.status = "Logged out"
		}
		return m, nil
	case profileSavedMsg:
		if msg.err == nil {
			m.status = "Profile saved"
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *AccountModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.account.Account()
	loggedIn := a.Session.AuthState() == models.AuthLoggedIn

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.login) && !loggedIn:
		m.status, m.errMsg = "", ""
		return m, navigate(pageLogin)
	case key.Matches(msg, keys.logout) && loggedIn:
		m.status, m.errMsg = "", ""
		return m, m.cmdLogout()
	case key.Matches(msg, keys.refresh) && loggedIn && !a.Session.Loading():
		m.status, m.errMsg = "", ""
		return m, m.cmdFetch()
	case key.Matches(msg, keys.edit):
		if !a.Editable() {
			m.status = app.MsgProfileNotEditable
			return m, nil
		}
		m.status, m.errMsg = "", ""
		return m, navigate(pageEdit)
	case key.Matches(msg, keys.progress):
		return m, navigate(pageProgress)
	}

	return m, nil
}

// View implements [tea.Model].
func (m *AccountModel) View() string {
	a := m.account.Account()
	p := m.account.Display()

	var b strings.Builder
	b.WriteString(p.Welcome())
	b.WriteString("\n\n")
	if rank := p.RankTitle(); rank != "" {
		b.WriteString(rankStyle.Render(rank))
		b.WriteString("\n")
	}
	b.WriteString(field("Name", p.NameText()))
	b.WriteString("\n")
	b.WriteString(field("School", p.SchoolText()))
	b.WriteString("\n")
	if path := a.Server.SchoolLogoPath; path != "" {
		b.WriteString(field("Logo", path))
		b.WriteString("\n")
	}
	b.WriteString(field("Belt", p.BeltText()))
	b.WriteString("\n")
	if dan := p.DanText(); dan != "" {
		b.WriteString(field("Dan", dan))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case a.Session.Loading():
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	default:
		b.WriteString(statusStyle.Render(field("Session", a.Session.AuthState().String())))
	}

	errMsg := m.errMsg
	if errMsg == "" {
		errMsg = a.Session.Error
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage(p.Title(), b.String(), m.hotKeys(a))
}

func (m *AccountModel) hotKeys(a models.Account) string {
	parts := make([]string, 0, 6)
	if a.Session.AuthState() == models.AuthLoggedIn {
		parts = append(parts, "o: logout", "r: refresh")
	} else {
		parts = append(parts, "l: login")
	}
	if a.Editable() {
		parts = append(parts, "e: edit")
	}
	parts = append(parts, "p: progress", "v: about", "q: quit")
	return strings.Join(parts, " │ ")
}

func (m *AccountModel) cmdLogout() tea.Cmd {
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		return logoutResultMsg{err: account.Logout(ctx)}
	}
}

func (m *AccountModel) cmdFetch() tea.Cmd {
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		return fetchResultMsg{err: account.FetchCurrentUser(ctx)}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
