// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"net/http"
	"strconv"
)

func (h *Handler) schoolLogo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.logo)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.logo)
}
