// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profile derives what the account screen shows from an
// [models.Account] snapshot.
//
// Server-authoritative values win over locally entered ones field by field.
// The master and grandmaster flags move as a pair: both come from the server
// while it holds a belt, otherwise both come from the local profile. Dan is
// always recomputed from whichever belt was chosen.
package profile

import (
	"strconv"

	"github.com/MKhiriev/go-belt-keeper/models"
)

// Placeholder is rendered for absent values.
const Placeholder = "N/A"

// DisplayProfile is the reconciled view of an account.
type DisplayProfile struct {
	Name          string
	School        string
	Belt          models.Belt
	Dan           int
	IsMaster      bool
	IsGrandmaster bool
}

// Reconcile picks the display value of every profile field. It is pure and
// total over any account.
func Reconcile(account models.Account) DisplayProfile {
	server, local := account.Server, account.Local

	p := DisplayProfile{
		Name:   firstNonEmpty(server.FullName, local.Name),
		School: firstNonEmpty(server.School, local.School),
		Belt:   local.Belt,
	}
	if account.HasServerRank() {
		p.Belt = server.Belt
		p.IsMaster, p.IsGrandmaster = server.IsMaster, server.IsGrandmaster
	} else {
		p.IsMaster, p.IsGrandmaster = local.IsMaster, local.IsGrandmaster
	}
	p.Dan = p.Belt.Dan()

	return p
}

func firstNonEmpty(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

// Ordinal formats n as an English ordinal: 1st, 2nd, 3rd, 4th, 11th, 21st.
// Non-positive n yields "".
func Ordinal(n int) string {
	if n <= 0 {
		return ""
	}

	suffix := "th"
	if mod100 := n % 100; mod100 < 11 || mod100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// Title is the heading of the account screen.
func (p DisplayProfile) Title() string {
	if p.Name == "" {
		return "Student's details"
	}
	return p.Name + "'s details"
}

// Welcome greets the user on the home screen.
func (p DisplayProfile) Welcome() string {
	if p.Name == "" {
		return "Welcome!"
	}
	return "Welcome, " + p.Name + "!"
}

// RankTitle returns "Grand Master", "Master" or "". Grandmaster wins when both
// flags are set.
func (p DisplayProfile) RankTitle() string {
	switch {
	case p.IsGrandmaster:
		return "Grand Master"
	case p.IsMaster:
		return "Master"
	default:
		return ""
	}
}

// NameText returns the name or the placeholder.
func (p DisplayProfile) NameText() string {
	return orPlaceholder(p.Name)
}

// SchoolText returns the school or the placeholder.
func (p DisplayProfile) SchoolText() string {
	return orPlaceholder(p.School)
}

// BeltText returns the belt label or the placeholder. Unknown tokens are shown
// verbatim.
func (p DisplayProfile) BeltText() string {
	if p.Belt.IsZero() {
		return Placeholder
	}
	if label := p.Belt.Label(); label != "" {
		return label
	}
	return string(p.Belt)
}

// DanText returns e.g. "3rd Degree", or "" without a dan.
func (p DisplayProfile) DanText() string {
	if p.Dan <= 0 {
		return ""
	}
	return Ordinal(p.Dan) + " Degree"
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
