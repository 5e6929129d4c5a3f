// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/internal/logger"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
	"github.com/MKhiriev/go-belt-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		utils.WriteJSONError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoUserWasFound), errors.Is(err, ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{Token: token}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, app.MsgMissingBearerToken, http.StatusUnauthorized)
		return
	}

	user, err := h.users.ByID(userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("token subject is unknown")
		utils.WriteJSONError(w, app.MsgMissingBearerToken, http.StatusUnauthorized)
		return
	}

	// A root-relative logo URL points at this server.
	if logoURL := user.School.LogoURL; strings.HasPrefix(logoURL, "/") {
		user.School = models.DetailedSchool(user.School.Name, "http://"+r.Host+logoURL)
	}

	_, _ = utils.WriteJSON(w, models.CurrentUserResponse{User: user}, http.StatusOK)
}
