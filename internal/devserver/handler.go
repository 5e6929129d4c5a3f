// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// LogoPath is the route serving the placeholder school logo.
const LogoPath = "/assets/logo.png"

// Handler serves the account endpoints.
type Handler struct {
	users  *Users
	tokens *Tokens
	logo   []byte

	logger *logger.Logger
}

// NewHandler returns a Handler over users and tokens.
func NewHandler(users *Users, tokens *Tokens, logger *logger.Logger) (*Handler, error) {
	logo, err := renderLogo()
	if err != nil {
		return nil, fmt.Errorf("render logo: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		users:  users,
		tokens: tokens,
		logo:   logo,
		logger: logger,
	}, nil
}

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Get(LogoPath, h.schoolLogo)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.currentUser)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return router
}
