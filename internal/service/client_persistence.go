// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-belt-keeper/internal/state"
	"github.com/MKhiriev/go-belt-keeper/internal/store"
	"github.com/MKhiriev/go-belt-keeper/models"
)

// AccountNamespace is the persisted-state key of the account slice.
const AccountNamespace = "persist:account"

// accountPersister writes the whitelisted account slice to local storage.
type accountPersister struct {
	repo  store.PersistedStateRepository
	store *state.AccountStore
}

// save writes the current slice, or removes it when nothing is left to keep.
func (p accountPersister) save(ctx context.Context) error {
	persisted := p.store.Persisted()
	if persisted == (models.PersistedAccount{}) {
		if err := p.repo.Remove(ctx, AccountNamespace); err != nil {
			return fmt.Errorf("remove persisted account: %w", err)
		}
		return nil
	}

	payload, err := json.Marshal(persisted)
	if err != nil {
		return fmt.Errorf("encode persisted account: %w", err)
	}
	if err = p.repo.Set(ctx, AccountNamespace, payload); err != nil {
		return fmt.Errorf("save persisted account: %w", err)
	}

	return nil
}

// load reads the persisted slice. A missing namespace yields the zero value.
func (p accountPersister) load(ctx context.Context) (models.PersistedAccount, error) {
	payload, err := p.repo.Get(ctx, AccountNamespace)
	if errors.Is(err, store.ErrPersistedStateNotFound) {
		return models.PersistedAccount{}, nil
	}
	if err != nil {
		return models.PersistedAccount{}, fmt.Errorf("load persisted account: %w", err)
	}

	var persisted models.PersistedAccount
	if err = json.Unmarshal(payload, &persisted); err != nil {
		return models.PersistedAccount{}, fmt.Errorf("decode persisted account: %w", err)
	}

	return persisted, nil
}
