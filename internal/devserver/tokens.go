// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"fmt"

	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
)

// Tokens issues and verifies bearer tokens whose subject is a user ID.
type Tokens struct {
	cfg config.Auth
}

// NewTokens returns a token issuer for cfg.
func NewTokens(cfg config.Auth) *Tokens {
	return &Tokens{cfg: cfg}
}

// Issue signs a token for userID.
func (t *Tokens) Issue(userID string) (string, error) {
	token, err := utils.GenerateJWTToken(t.cfg.TokenIssuer, userID, t.cfg.TokenDuration, t.cfg.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Parse returns the user ID carried by token.
func (t *Tokens) Parse(token string) (string, error) {
	userID, err := utils.ValidateJWTToken(token, t.cfg.TokenSignKey, t.cfg.TokenIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return userID, nil
}
