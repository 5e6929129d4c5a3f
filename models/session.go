// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthState is the login super-state derived from a [Session].
type AuthState int

const (
	AuthLoggedOut AuthState = iota
	AuthLoggingIn
	AuthLoggedIn
)

// String implements fmt.Stringer.
func (s AuthState) String() string {
	switch s {
	case AuthLoggingIn:
		return "logging in"
	case AuthLoggedIn:
		return "logged in"
	default:
		return "logged out"
	}
}

// FetchState is the profile-fetch sub-state. It is independent from
// [AuthState]: a failed fetch keeps the user logged in.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchFetching
	FetchFetched
	FetchFailed
)

// String implements fmt.Stringer.
func (s FetchState) String() string {
	switch s {
	case FetchFetching:
		return "fetching"
	case FetchFetched:
		return "fetched"
	case FetchFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Session holds the auth token and the status of the login and profile-fetch
// operations.
type Session struct {
	Token        string
	LoginPending bool
	Fetch        FetchState
	// Error is the message of the last failed attempt. It is cleared when the
	// next attempt starts.
	Error string
}

// Loading reports whether a login or profile fetch is in flight.
func (s Session) Loading() bool {
	return s.LoginPending || s.Fetch == FetchFetching
}

// AuthState derives the login state. A pending re-login over a valid token
// reports [AuthLoggingIn] while the token stays usable.
func (s Session) AuthState() AuthState {
	switch {
	case s.LoginPending:
		return AuthLoggingIn
	case s.Token != "":
		return AuthLoggedIn
	default:
		return AuthLoggedOut
	}
}
