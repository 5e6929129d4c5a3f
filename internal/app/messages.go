// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Default user-facing messages used when the account service does not supply
// its own text.
const (
	MsgLoginFailed         = "Login failed"
	MsgFetchUserFailed     = "Failed to fetch user"
	MsgNetworkError        = "Network error"
	MsgMissingCredentials  = "Please enter both email and password"
	MsgEmptyLogoURL        = "logo url is empty"
	MsgLogoDownloadFailed  = "school logo download failed"
	MsgUnknownBelt         = "unknown belt"
	MsgProfileNotEditable  = "profile is managed by your school"
	MsgNotLoggedIn         = "not logged in"
	MsgInvalidScore        = "score must be between 0 and 100"
	MsgInvalidProgress     = "progress must be between 0 and 100"
	MsgEmptyContentID      = "content id is empty"
	MsgInvalidRecordData   = "training record data is not valid JSON"
	MsgMalformedResponse   = "malformed response from account service"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgMissingBearerToken  = "Missing or invalid token"
	MsgInternalServerError = "Internal server error"
)
