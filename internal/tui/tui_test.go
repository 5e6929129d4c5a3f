// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/mock"
	"github.com/MKhiriev/go-belt-keeper/internal/profile"
	"github.com/MKhiriev/go-belt-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func expectAccount(svc *mock.MockClientAccountService, a models.Account) {
	svc.EXPECT().Account().Return(a).AnyTimes()
	svc.EXPECT().Display().Return(profile.Reconcile(a)).AnyTimes()
}

func serverAccount() models.Account {
	return models.Account{
		Server: models.ServerProfile{
			FullName: "Jane Doe",
			School:   "Central Dojang",
			Belt:     "black_2",
			Dan:      2,
			IsMaster: true,
		},
		Session: models.Session{Token: "abc", Fetch: models.FetchFetched},
	}
}

func execNavigate(t *testing.T, cmd tea.Cmd) NavigateTo {
	t.Helper()
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	return nav
}

// ── RootModel ────────────────────────────────────────────────────────────────

func newTestRoot(t *testing.T, a models.Account) (RootModel, *mock.MockClientAccountService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, a)

	ctx := context.Background()
	pages := map[string]tea.Model{
		pageAccount: NewAccountModel(ctx, svc),
		pageLogin:   NewLoginModel(ctx, svc),
		pageEdit:    NewEditModel(ctx, svc),
	}
	return NewRootModel(pages, pageAccount, models.NewAppBuildInfo("1.0.0", "", "")), svc
}

func TestRootModel_Navigation(t *testing.T) {
	root, _ := newTestRoot(t, models.Account{})

	updated, cmd := root.Update(NavigateTo{Page: pageLogin})
	root = updated.(RootModel)
	assert.Equal(t, pageLogin, root.Page())
	assert.NotNil(t, cmd)

	updated, _ = root.Update(NavigateTo{Page: "missing"})
	assert.Equal(t, pageLogin, updated.(RootModel).Page())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(t, models.Account{})

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, updated.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_TickKeepsTicking(t *testing.T) {
	root, _ := newTestRoot(t, models.Account{})

	_, cmd := root.Update(tickMsg{})

	assert.NotNil(t, cmd)
}

func TestRootModel_BuildInfo(t *testing.T) {
	root, _ := newTestRoot(t, models.Account{})

	updated, _ := root.Update(runes("v"))
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "1.0.0")
	assert.Contains(t, root.View(), "N/A")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, updated.(RootModel).View(), "ABOUT")
}

// ── AccountModel ─────────────────────────────────────────────────────────────

func TestAccountModel_ViewShowsReconciledProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	a := serverAccount()
	a.Local = models.LocalProfile{Name: "Janie", Belt: "blue"}
	a.Server.SchoolLogoPath = "/cache/school-logo-1.png"
	expectAccount(svc, a)

	view := NewAccountModel(context.Background(), svc).View()

	assert.Contains(t, view, "Jane Doe's details")
	assert.Contains(t, view, "Master")
	assert.Contains(t, view, "Central Dojang")
	assert.Contains(t, view, "/cache/school-logo-1.png")
	assert.Contains(t, view, "Black Belt (2nd Dan)")
	assert.Contains(t, view, "2nd Degree")
	assert.NotContains(t, view, "Janie")
	assert.NotContains(t, view, "e: edit")
}

func TestAccountModel_ViewPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, models.Account{})

	view := NewAccountModel(context.Background(), svc).View()

	assert.Contains(t, view, "Student's details")
	assert.Contains(t, view, "Welcome!")
	assert.Contains(t, view, profile.Placeholder)
	assert.Contains(t, view, "l: login")
}

func TestAccountModel_EditBlockedWhileServerHoldsRank(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, serverAccount())
	m := NewAccountModel(context.Background(), svc)

	_, cmd := m.Update(runes("e"))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgProfileNotEditable, m.status)
}

func TestAccountModel_EditAllowedWithoutServerRank(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, models.Account{})
	m := NewAccountModel(context.Background(), svc)

	_, cmd := m.Update(runes("e"))

	assert.Equal(t, pageEdit, execNavigate(t, cmd).Page)
}

func TestAccountModel_LoginAndLogoutKeys(t *testing.T) {
	ctrl := gomock.NewController(t)

	loggedOut := mock.NewMockClientAccountService(ctrl)
	expectAccount(loggedOut, models.Account{})
	m := NewAccountModel(context.Background(), loggedOut)
	_, cmd := m.Update(runes("l"))
	assert.Equal(t, pageLogin, execNavigate(t, cmd).Page)
	_, cmd = m.Update(runes("o"))
	assert.Nil(t, cmd)

	loggedIn := mock.NewMockClientAccountService(ctrl)
	expectAccount(loggedIn, serverAccount())
	loggedIn.EXPECT().Logout(gomock.Any()).Return(nil)
	m = NewAccountModel(context.Background(), loggedIn)

	_, cmd = m.Update(runes("o"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, logoutResultMsg{}, msg)

	m.Update(msg)
	assert.Equal(t, "Logged out", m.status)
}

func TestAccountModel_RefreshReportsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, serverAccount())
	fetchErr := app.NewError(app.KindNetworkFailure, app.MsgNetworkError, nil)
	svc.EXPECT().FetchCurrentUser(gomock.Any()).Return(fetchErr)
	m := NewAccountModel(context.Background(), svc)

	_, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, app.MsgNetworkError, m.errMsg)
	assert.Contains(t, m.View(), app.MsgNetworkError)
}

// ── LoginModel ───────────────────────────────────────────────────────────────

func TestLoginModel_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	m := NewLoginModel(context.Background(), svc)
	m.inputs[0].SetValue("a@b.com")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgMissingCredentials, m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	svc.EXPECT().Login(gomock.Any(), "a@b.com", "x").Return(nil)
	m := NewLoginModel(context.Background(), svc)
	m.inputs[0].SetValue("  a@b.com ")
	m.inputs[1].SetValue("x")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Contains(t, m.View(), "Logging in...")

	// a second enter while submitting is ignored
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	_, cmd = m.Update(cmd())
	assert.False(t, m.submitting)
	assert.Equal(t, pageAccount, execNavigate(t, cmd).Page)
}

func TestLoginModel_FailureShowsServerMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	svc.EXPECT().Login(gomock.Any(), "a@b.com", "bad").
		Return(app.NewError(app.KindAuthFailure, "Invalid email or password", nil))
	m := NewLoginModel(context.Background(), svc)
	m.inputs[0].SetValue("a@b.com")
	m.inputs[1].SetValue("bad")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())

	assert.Nil(t, next)
	assert.Equal(t, "Invalid email or password", m.errMsg)
}

// ── EditModel ────────────────────────────────────────────────────────────────

func TestEditModel_SeedsAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, models.Account{Local: models.LocalProfile{Name: "Alice", School: "Dojang", Belt: "black_1", IsMaster: true}})
	m := NewEditModel(context.Background(), svc)
	m.Init()

	assert.Equal(t, "Alice", m.name.Value())
	assert.Equal(t, "Dojang", m.school.Value())
	assert.Equal(t, models.Belt("black_1"), models.Belts[m.belt].Value)

	// move to the belt picker and step up one rank
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})

	svc.EXPECT().SaveLocalProfile(gomock.Any(), models.LocalProfile{
		Name:          "Alice",
		School:        "Dojang",
		Belt:          "black_2",
		IsMaster:      true,
		IsGrandmaster: true,
	}).Return(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())

	nav := execNavigate(t, cmd)
	assert.Equal(t, pageAccount, nav.Page)
	assert.Equal(t, profileSavedMsg{}, nav.Payload)
}

func TestEditModel_BeltPickerBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, models.Account{})
	m := NewEditModel(context.Background(), svc)
	m.Init()
	m.setFocus(editFieldBelt)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, noBelt, m.belt)
	assert.Contains(t, m.View(), "none")

	for range len(models.Belts) + 3 {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, len(models.Belts)-1, m.belt)
}

func TestEditModel_CancelAndError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientAccountService(ctrl)
	expectAccount(svc, models.Account{})
	m := NewEditModel(context.Background(), svc)
	m.Init()

	m.Update(profileSavedMsg{err: app.InvalidInput(app.MsgUnknownBelt)})
	assert.Equal(t, app.MsgUnknownBelt, m.errMsg)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	nav := execNavigate(t, cmd)
	assert.Equal(t, pageAccount, nav.Page)
	assert.Nil(t, nav.Payload)
}

// ── ProgressModel ────────────────────────────────────────────────────────────

func TestProgressModel_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	theory := mock.NewMockClientTheoryService(ctrl)
	training := mock.NewMockClientTrainingService(ctrl)

	theory.EXPECT().Scores(gomock.Any()).Return([]models.TheoryScore{{ID: "1", Score: 90}}, nil)
	training.EXPECT().Progress(gomock.Any()).Return([]models.TrainingProgress{{ContentID: "forms", Read: true, Percent: 40}}, nil)
	training.EXPECT().Records(gomock.Any()).Return([]models.TrainingRecord{{ID: "a"}, {ID: "b"}}, nil)

	m := NewProgressModel(context.Background(), theory, training)
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading...")

	m.Update(cmd())
	view := m.View()

	assert.Contains(t, view, " 90%")
	assert.Contains(t, view, "forms")
	assert.Contains(t, view, "sessions recorded: 2")
}

func TestProgressModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	theory := mock.NewMockClientTheoryService(ctrl)
	training := mock.NewMockClientTrainingService(ctrl)
	theory.EXPECT().Scores(gomock.Any()).Return(nil, assert.AnError)

	m := NewProgressModel(context.Background(), theory, training)
	m.Update(m.Init()())

	assert.Contains(t, m.View(), assert.AnError.Error())
}
