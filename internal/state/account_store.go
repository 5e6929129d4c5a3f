// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state owns the process-wide [models.Account] record.
//
// All mutation goes through the [AccountStore] reducers. Readers take a
// [AccountStore.Snapshot] and never share memory with the store.
package state

import (
	"sync"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/models"
)

// AccountStore is an injectable, concurrency-safe container for the account.
type AccountStore struct {
	mu      sync.RWMutex
	account models.Account

	// generation changes on every login, logout, restore and fetch start.
	// A fetch completion only applies while its ticket still matches.
	generation uint64
}

// FetchTicket ties a profile fetch to the session state it was started in.
type FetchTicket struct {
	Token      string
	generation uint64
}

// NewAccountStore returns a store holding a defaulted account.
func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

// Snapshot returns a deep copy of the current account.
func (s *AccountStore) Snapshot() models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.account
	if s.account.User != nil {
		user := *s.account.User
		snapshot.User = &user
	}
	return snapshot
}

// Persisted returns the slice of the account that survives restarts.
func (s *AccountStore) Persisted() models.PersistedAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.account.Persisted()
}

// Restore loads a persisted slice into a fresh account. Transient session
// fields start clean.
func (s *AccountStore) Restore(persisted models.PersistedAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = models.Account{
		Local:   persisted.Local,
		Session: models.Session{Token: persisted.Token},
	}
	s.generation++
}

// SetLocalProfile replaces the locally entered profile.
func (s *AccountStore) SetLocalProfile(local models.LocalProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account.Local = local
}

// LoginStarted enters the logging-in state and clears the previous error.
// An existing token stays in place until a new one arrives.
func (s *AccountStore) LoginStarted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account.Session.LoginPending = true
	s.account.Session.Error = ""
}

// LoginSucceeded stores the new token. Any fetch in flight belongs to the
// previous session and will be dropped.
func (s *AccountStore) LoginSucceeded(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account.Session.Token = token
	s.account.Session.LoginPending = false
	s.account.Session.Fetch = models.FetchIdle
	s.account.Session.Error = ""
	s.generation++
}

// LoginFailed leaves the logging-in state with the error message set. The
// previous token, if any, is kept.
func (s *AccountStore) LoginFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account.Session.LoginPending = false
	s.account.Session.Error = app.UserMessage(err)
}

// FetchStarted enters the fetching sub-state and clears the previous error.
// The returned ticket carries the token to fetch with. It reports false and
// changes nothing when there is no token.
//
// Starting a fetch supersedes any fetch still in flight.
func (s *AccountStore) FetchStarted() (FetchTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account.Session.Token == "" {
		return FetchTicket{}, false
	}

	s.generation++
	s.account.Session.Fetch = models.FetchFetching
	s.account.Session.Error = ""

	return FetchTicket{Token: s.account.Session.Token, generation: s.generation}, true
}

// FetchSucceeded replaces the server profile with the fetched user. Dan is
// derived from the belt. The cached logo path is kept only while the logo URL
// is unchanged.
//
// It returns the logo URL still to be downloaded, empty when there is no logo
// or the cached path was kept. applied is false, and nothing changes, when
// ticket no longer matches the store because of a logout, a new login or a
// newer fetch.
func (s *AccountStore) FetchSucceeded(ticket FetchTicket, user models.RemoteUser) (download string, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.generation != s.generation {
		return "", false
	}

	logoPath := ""
	if s.account.Server.SchoolLogoURL == user.School.LogoURL {
		logoPath = s.account.Server.SchoolLogoPath
	}

	s.account.User = &user
	s.account.Server = models.ServerProfile{
		FullName:       user.FullName,
		Address:        user.Address,
		Email:          user.Email,
		School:         user.School.Name,
		Belt:           user.Belt,
		Dan:            user.Belt.Dan(),
		IsMaster:       user.IsMaster,
		IsGrandmaster:  user.IsGrandmaster,
		SchoolLogoURL:  user.School.LogoURL,
		SchoolLogoPath: logoPath,
	}
	s.account.Session.Fetch = models.FetchFetched
	s.account.Session.Error = ""

	if logoPath != "" {
		return "", true
	}
	return user.School.LogoURL, true
}

// FetchFailed records a failed fetch. Server fields and the token are left
// untouched. Like [AccountStore.FetchSucceeded] it reports false and changes
// nothing for a stale ticket.
func (s *AccountStore) FetchFailed(ticket FetchTicket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.generation != s.generation {
		return false
	}

	s.account.Session.Fetch = models.FetchFailed
	s.account.Session.Error = app.UserMessage(err)
	return true
}

// SetSchoolLogoPath records the cached file for logoURL. It reports false and
// changes nothing when logoURL is no longer the current school logo.
func (s *AccountStore) SetSchoolLogoPath(logoURL, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if logoURL == "" || s.account.Server.SchoolLogoURL != logoURL {
		return false
	}
	s.account.Server.SchoolLogoPath = path
	return true
}

// Logout clears the user, the server profile and the session. Local fields
// survive.
func (s *AccountStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = models.Account{Local: s.account.Local}
	s.generation++
}
