// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver implements a local stand-in of the remote account
// service used for manual runs and end-to-end tests of the client.
//
// It serves POST /auth/login, GET /auth/me and GET /assets/logo.png for a
// single seeded user. Passwords are checked with bcrypt, tokens are HS256
// JWTs, and every non-2xx answer carries a {"message": "..."} body.
package devserver
