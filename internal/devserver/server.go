// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs the development account service over HTTP.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// New assembles the seeded user directory, token issuer and router for cfg.
func New(cfg *config.DevServerConfig, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating new server...")

	users, err := NewUsers(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	handler, err := NewHandler(users, NewTokens(cfg.Auth), logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		server: &http.Server{
			Addr:              cfg.Server.HTTPAddress,
			Handler:           handler.Init(),
			ReadHeaderTimeout: cfg.Server.RequestTimeout,
			ReadTimeout:       cfg.Server.RequestTimeout,
			WriteTimeout:      cfg.Server.RequestTimeout,
		},
		logger: logger,
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("address", s.server.Addr).Msg("Launching HTTP server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
