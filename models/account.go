// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteUser is the user record returned by GET /auth/me.
type RemoteUser struct {
	ID            string    `json:"id,omitempty"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	Address       string    `json:"address"`
	School        SchoolRef `json:"school"`
	Belt          Belt      `json:"belt"`
	IsMaster      bool      `json:"isMaster"`
	IsGrandmaster bool      `json:"isGrandmaster"`
}

// ServerProfile holds the last fetched server-authoritative fields. Empty
// strings and zero values mean "none".
type ServerProfile struct {
	FullName      string
	Address       string
	Email         string
	School        string
	Belt          Belt
	Dan           int
	IsMaster      bool
	IsGrandmaster bool

	SchoolLogoURL string
	// SchoolLogoPath is the cached file for SchoolLogoURL. It is filled by
	// the logo cache only.
	SchoolLogoPath string
}

// LocalProfile holds the profile fields entered on the edit screen. They are
// only shown when the server has nothing better.
type LocalProfile struct {
	Name          string `json:"name,omitempty"`
	School        string `json:"school,omitempty"`
	Belt          Belt   `json:"belt,omitempty"`
	Dan           int    `json:"dan,omitempty"`
	IsMaster      bool   `json:"isMaster,omitempty"`
	IsGrandmaster bool   `json:"isGrandmaster,omitempty"`
}

// Account is the whole client-side account record.
type Account struct {
	User    *RemoteUser
	Server  ServerProfile
	Local   LocalProfile
	Session Session
}

// HasServerRank reports whether the server supplied a belt. While it did the
// profile is read-only.
func (a Account) HasServerRank() bool {
	return !a.Server.Belt.IsZero()
}

// Editable reports whether the local profile may be edited.
func (a Account) Editable() bool {
	return !a.HasServerRank()
}

// Persisted returns the slice of the account that survives restarts.
func (a Account) Persisted() PersistedAccount {
	return PersistedAccount{
		Token: a.Session.Token,
		Local: a.Local,
	}
}

// PersistedAccount is the whitelisted part of [Account] written to local
// storage: the token and the local profile.
type PersistedAccount struct {
	Token string       `json:"token,omitempty"`
	Local LocalProfile `json:"local"`
}
