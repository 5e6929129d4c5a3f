// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-belt-keeper/internal/app"
	"github.com/MKhiriev/go-belt-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx answers. Anything else becomes an auth
// failure whose message is the {"message"} field of the body, or
// defaultMessage when the body has none.
func mapHTTPError(resp *resty.Response, defaultMessage string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := defaultMessage
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && strings.TrimSpace(body.Message) != "" {
		message = strings.TrimSpace(body.Message)
	}

	return app.NewError(app.KindAuthFailure, message, fmt.Errorf("http %d", resp.StatusCode()))
}

// mapTransportError classifies a failure where no usable response arrived.
func mapTransportError(err error) error {
	return app.NewError(app.KindNetworkFailure, app.MsgNetworkError, err)
}

// mapDecodeError classifies a 2xx answer whose body cannot be used.
func mapDecodeError(err error) error {
	return app.NewError(app.KindNetworkFailure, app.MsgMalformedResponse, err)
}
