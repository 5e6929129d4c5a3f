// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
	"github.com/MKhiriev/go-belt-keeper/models"
)

type httpAccountAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAccountAdapter constructs an HTTP/REST implementation of
// [AccountAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout to every
// request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAccountAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AccountAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	return &httpAccountAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [AccountAdapter]. A 2xx answer without a token is treated
// as a malformed response.
func (h *httpAccountAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		h.logger.Err(err).Str("func", "httpAccountAdapter.Login").Msg("login request failed")
		return models.LoginResponse{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp, app.MsgLoginFailed); err != nil {
		h.logger.Debug().Str("func", "httpAccountAdapter.Login").Int("status", resp.StatusCode()).Msg("login rejected")
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LoginResponse{}, mapDecodeError(fmt.Errorf("decode login response: %w", err))
	}
	if strings.TrimSpace(out.Token) == "" {
		return models.LoginResponse{}, mapDecodeError(errors.New("login response carries no token"))
	}

	return out, nil
}

// FetchCurrentUser implements [AccountAdapter].
func (h *httpAccountAdapter) FetchCurrentUser(ctx context.Context, token string) (models.RemoteUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token)).
		Get("/auth/me")
	if err != nil {
		h.logger.Err(err).Str("func", "httpAccountAdapter.FetchCurrentUser").Msg("fetch current user request failed")
		return models.RemoteUser{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp, app.MsgFetchUserFailed); err != nil {
		h.logger.Debug().Str("func", "httpAccountAdapter.FetchCurrentUser").Int("status", resp.StatusCode()).Msg("fetch current user rejected")
		return models.RemoteUser{}, err
	}

	var out models.CurrentUserResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RemoteUser{}, mapDecodeError(fmt.Errorf("decode current user response: %w", err))
	}

	return out.User, nil
}

type httpAssetAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAssetAdapter constructs an [AssetAdapter] issuing plain GET requests
// against absolute URLs.
func NewHTTPAssetAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) AssetAdapter {
	return &httpAssetAdapter{
		client: utils.NewHTTPClient("", adapterCfg.RequestTimeout),
		logger: logger,
	}
}

// Download implements [AssetAdapter]. The response body is streamed to dst
// without buffering it in memory.
func (h *httpAssetAdapter) Download(ctx context.Context, rawURL string, dst io.Writer) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpAssetAdapter.Download").Str("url", rawURL).Msg("asset request failed")
		return app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, fmt.Errorf("http %d", resp.StatusCode()))
	}

	if _, err = io.Copy(dst, body); err != nil {
		return app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, fmt.Errorf("read asset body: %w", err))
	}

	return nil
}
