// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := NewError(KindAuthFailure, "Invalid credentials", nil)

	assert.ErrorIs(t, err, ErrAuthFailure)
	assert.NotErrorIs(t, err, ErrNetworkFailure)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrDownloadFailed)
}

func TestError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", NewError(KindNetworkFailure, MsgNetworkError, errors.New("dial tcp: refused")))

	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Equal(t, KindNetworkFailure, KindOf(err))
	assert.Equal(t, MsgNetworkError, UserMessage(err))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(KindDownloadFailed, MsgLogoDownloadFailed, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "download failed: school logo download failed: boom", err.Error())
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Equal(t, MsgMissingCredentials, UserMessage(InvalidInput(MsgMissingCredentials)))
	assert.Equal(t, "auth failure", UserMessage(&Error{Kind: KindAuthFailure}))
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("x")))
	assert.Equal(t, "unknown", Kind(0).String())
}
