// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-belt-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("App", "BeltKeeper"))
	b.WriteString("\n")
	b.WriteString(field("Version", info.Version))
	b.WriteString("\n")
	b.WriteString(field("Date", info.Date))
	b.WriteString("\n")
	b.WriteString(field("Commit", info.Commit))

	return renderPage("ABOUT", b.String(), "esc: back")
}
