// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logocache keeps downloaded school logos on disk.
//
// Files are content-addressed by URL: the key is the first 16 hex characters
// of SHA-256(url) and the file is named school-logo-<key>.png. A cached file
// is never downloaded again. Downloads land in a temp file that is renamed
// into place only on success, so a failed download leaves no file behind.
package logocache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-belt-keeper/internal/adapter"
	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"golang.org/x/sync/singleflight"
)

const (
	keyLength  = 16
	filePrefix = "school-logo-"
	fileSuffix = ".png"
)

// Manager resolves logo URLs to local files, downloading on a cache miss.
// Concurrent calls for the same URL share one download.
type Manager struct {
	dir        string
	downloader adapter.AssetAdapter
	group      singleflight.Group

	logger *logger.Logger
}

// NewManager creates a Manager caching into dir.
func NewManager(dir string, downloader adapter.AssetAdapter, logger *logger.Logger) *Manager {
	return &Manager{dir: dir, downloader: downloader, logger: logger}
}

// CacheKey returns the cache key of logoURL.
func CacheKey(logoURL string) string {
	sum := sha256.Sum256([]byte(logoURL))
	return hex.EncodeToString(sum[:])[:keyLength]
}

// FileName returns the cache file name of logoURL.
func FileName(logoURL string) string {
	return filePrefix + CacheKey(logoURL) + fileSuffix
}

// Path returns where logoURL is cached, whether or not the file exists.
func (m *Manager) Path(logoURL string) string {
	return filepath.Join(m.dir, FileName(logoURL))
}

// FetchOrDownload returns the local path of logoURL. On a cache hit no network
// access happens. On a miss the logo is downloaded once; any failure is a
// [app.KindDownloadFailed] error and leaves the cache unpopulated.
//
// The shared download is not cancelled with ctx, so one caller giving up does
// not fail the others waiting on the same URL. It stays bounded by the asset
// adapter's request timeout. A cancelled caller returns early with an error.
func (m *Manager) FetchOrDownload(ctx context.Context, logoURL string) (string, error) {
	if logoURL == "" {
		return "", app.InvalidInput(app.MsgEmptyLogoURL)
	}

	path := m.Path(logoURL)
	if exists(path) {
		return path, nil
	}

	downloadCtx := context.WithoutCancel(ctx)
	results := m.group.DoChan(path, func() (any, error) {
		// a concurrent call may have finished between the check and DoChan
		if exists(path) {
			return nil, nil
		}
		return nil, m.download(downloadCtx, logoURL, path)
	})

	select {
	case <-ctx.Done():
		m.logger.Warn().Err(ctx.Err()).Str("func", "Manager.FetchOrDownload").Str("url", logoURL).Msg("stopped waiting for logo")
		return "", app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, ctx.Err())
	case res := <-results:
		if res.Err != nil {
			m.logger.Err(res.Err).Str("func", "Manager.FetchOrDownload").Str("url", logoURL).Bool("shared", res.Shared).Msg("logo download failed")
			return "", res.Err
		}
		m.logger.Debug().Str("func", "Manager.FetchOrDownload").Str("path", path).Bool("shared", res.Shared).Msg("logo cached")
		return path, nil
	}
}

func (m *Manager) download(ctx context.Context, logoURL, path string) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, fmt.Errorf("create cache dir: %w", err))
	}

	tmp, err := os.CreateTemp(m.dir, filePrefix+"*.tmp")
	if err != nil {
		return app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, fmt.Errorf("create temp file: %w", err))
	}
	tmpName := tmp.Name()

	err = m.downloader.Download(ctx, logoURL, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, fmt.Errorf("close temp file: %w", closeErr))
	}
	if err == nil {
		if renameErr := os.Rename(tmpName, path); renameErr != nil {
			err = app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, fmt.Errorf("move logo into cache: %w", renameErr))
		}
	}
	if err != nil {
		_ = os.Remove(tmpName)
		if !errors.Is(err, app.ErrDownloadFailed) {
			err = app.NewError(app.KindDownloadFailed, app.MsgLogoDownloadFailed, err)
		}
		return err
	}

	return nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
