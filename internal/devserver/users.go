// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-belt-keeper/internal/config"
	"github.com/MKhiriev/go-belt-keeper/internal/utils"
	"github.com/MKhiriev/go-belt-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

type userRecord struct {
	passwordHash []byte
	user         models.RemoteUser
}

// Users is an in-memory user directory keyed by lower-cased email.
type Users struct {
	mu      sync.RWMutex
	byEmail map[string]userRecord
	byID    map[string]string
}

// NewUsers returns a directory holding the seed user.
func NewUsers(seed config.Seed) (*Users, error) {
	users := &Users{
		byEmail: make(map[string]userRecord),
		byID:    make(map[string]string),
	}

	var school models.SchoolRef
	switch {
	case seed.LogoURL != "":
		school = models.DetailedSchool(seed.School, seed.LogoURL)
	case seed.School != "":
		school = models.SchoolName(seed.School)
	}

	err := users.Add(seed.Password, models.RemoteUser{
		Email:         seed.Email,
		FullName:      seed.FullName,
		Address:       seed.Address,
		School:        school,
		Belt:          models.Belt(seed.Belt),
		IsMaster:      seed.IsMaster,
		IsGrandmaster: seed.IsGrandmaster,
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Add stores user with a bcrypt hash of password. A missing ID is generated.
func (u *Users) Add(password string, user models.RemoteUser) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if user.ID == "" {
		user.ID = utils.NewID()
	}

	key := strings.ToLower(strings.TrimSpace(user.Email))

	u.mu.Lock()
	defer u.mu.Unlock()

	u.byEmail[key] = userRecord{passwordHash: hash, user: user}
	u.byID[user.ID] = key

	return nil
}

// Authenticate returns the user owning email when password matches.
func (u *Users) Authenticate(email, password string) (models.RemoteUser, error) {
	u.mu.RLock()
	record, ok := u.byEmail[strings.ToLower(strings.TrimSpace(email))]
	u.mu.RUnlock()

	if !ok {
		return models.RemoteUser{}, ErrNoUserWasFound
	}
	if err := bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)); err != nil {
		return models.RemoteUser{}, ErrWrongPassword
	}

	return record.user, nil
}

// ByID returns the user with the given identifier.
func (u *Users) ByID(id string) (models.RemoteUser, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	key, ok := u.byID[id]
	if !ok {
		return models.RemoteUser{}, ErrNoUserWasFound
	}
	return u.byEmail[key].user, nil
}
