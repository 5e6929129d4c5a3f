// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the error kinds and user-facing messages shared by the
// adapter, service and UI layers.
//
// Every failure the UI can show is an [*Error] with one of four kinds.
// Callers branch with errors.Is against the kind sentinels:
//
//	if errors.Is(err, app.ErrAuthFailure) { ... }
package app

import "errors"

// Kind is the closed set of recoverable failure categories.
type Kind int

const (
	// KindInvalidInput marks malformed arguments: missing email or password,
	// empty logo URL, unknown belt token.
	KindInvalidInput Kind = iota + 1
	// KindAuthFailure marks a non-2xx answer from login or fetch-current-user.
	KindAuthFailure
	// KindNetworkFailure marks a transport failure where no usable response
	// was received.
	KindNetworkFailure
	// KindDownloadFailed marks a non-200 status or transport failure while
	// downloading the school logo.
	KindDownloadFailed
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindAuthFailure:
		return "auth failure"
	case KindNetworkFailure:
		return "network failure"
	case KindDownloadFailed:
		return "download failed"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Message is safe to show to the user; Err is
// the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Kind sentinels for errors.Is. They match any [*Error] of the same kind.
var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrAuthFailure    = &Error{Kind: KindAuthFailure}
	ErrNetworkFailure = &Error{Kind: KindNetworkFailure}
	ErrDownloadFailed = &Error{Kind: KindDownloadFailed}
)

// NewError builds an [*Error] of the given kind.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// InvalidInput builds a [KindInvalidInput] error.
func InvalidInput(message string) *Error {
	return NewError(KindInvalidInput, message, nil)
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Kind.String() + ": " + e.Message
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another [*Error] of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first [*Error] in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// UserMessage returns the text the UI shows for err. Classified errors show
// their Message; anything else falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
