// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote account service.
//
// [AccountAdapter] covers the two account endpoints and [AssetAdapter] covers
// plain asset downloads such as the school logo. The package ships HTTP/REST
// implementations built on resty ([NewHTTPAccountAdapter],
// [NewHTTPAssetAdapter]).
//
// Every error returned by this package is an [*app.Error] classified at the
// boundary by mapHTTPError and mapTransportError, so callers branch with
// errors.Is against [app.ErrAuthFailure], [app.ErrNetworkFailure] or
// [app.ErrDownloadFailed].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-belt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AccountAdapter talks to the remote account service.
type AccountAdapter interface {
	// Login exchanges credentials for a bearer token via POST /auth/login.
	// A non-2xx answer is an auth failure carrying the server's message.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// FetchCurrentUser returns the user owning token via GET /auth/me.
	FetchCurrentUser(ctx context.Context, token string) (models.RemoteUser, error)
}

// AssetAdapter downloads raw assets by absolute URL.
type AssetAdapter interface {
	// Download streams the body of GET url into dst. Only HTTP 200 is a
	// success; dst may hold partial data when an error is returned.
	Download(ctx context.Context, url string, dst io.Writer) error
}
