// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "errors"

var (
	// ErrNoUserWasFound is returned when no user matches the credentials or
	// the token subject.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrWrongPassword is returned when the password does not match the
	// stored bcrypt hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidToken is returned for expired, malformed or foreign tokens.
	ErrInvalidToken = errors.New("token is expired or invalid")
)
