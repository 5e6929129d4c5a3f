// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// CurrentUserResponse is the success body of GET /auth/me.
type CurrentUserResponse struct {
	User RemoteUser `json:"user"`
}

// ErrorResponse is the body the account service sends with non-2xx statuses.
type ErrorResponse struct {
	Message string `json:"message"`
}
