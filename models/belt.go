// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// Belt is an enumerated rank code such as "white", "yellow_stripe" or
// "black_3". The empty value means "no belt".
type Belt string

const (
	blackPrefix  = "black_"
	stripeSuffix = "_stripe"

	maxDan = 9
)

// BeltOption is a single entry of the belt catalogue shown by pickers.
type BeltOption struct {
	Value Belt
	Label string
}

// Belts is the ordered belt catalogue, lowest rank first.
var Belts = []BeltOption{
	{Value: "white", Label: "White"},
	{Value: "orange", Label: "Orange"},
	{Value: "purple", Label: "Purple"},
	{Value: "yellow_stripe", Label: "Yellow Stripe"},
	{Value: "yellow", Label: "Yellow"},
	{Value: "green_stripe", Label: "Green Stripe"},
	{Value: "green", Label: "Green"},
	{Value: "blue_stripe", Label: "Blue Stripe"},
	{Value: "blue", Label: "Blue"},
	{Value: "red_stripe", Label: "Red Stripe"},
	{Value: "red", Label: "Red"},
	{Value: "black_stripe", Label: "Black Stripe"},
	{Value: "black_1", Label: "Black Belt (1st Dan)"},
	{Value: "black_2", Label: "Black Belt (2nd Dan)"},
	{Value: "black_3", Label: "Black Belt (3rd Dan)"},
	{Value: "black_4", Label: "Black Belt (4th Dan)"},
	{Value: "black_5", Label: "Black Belt (5th Dan)"},
	{Value: "black_6", Label: "Black Belt (6th Dan)"},
	{Value: "black_7", Label: "Black Belt (7th Dan)"},
	{Value: "black_8", Label: "Black Belt (8th Dan)"},
	{Value: "black_9", Label: "Black Belt (9th Dan)"},
}

// Dan returns the degree encoded in a "black_<n>" token, or 0 when the belt
// carries no degree.
func (b Belt) Dan() int {
	s := string(b)
	if !strings.HasPrefix(s, blackPrefix) {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimPrefix(s, blackPrefix))
	if err != nil || n < 1 || n > maxDan {
		return 0
	}
	return n
}

// IsBlack reports whether b is a black belt with a degree.
func (b Belt) IsBlack() bool {
	return b.Dan() > 0
}

// IsStripe reports whether b is an intermediate stripe belt.
func (b Belt) IsStripe() bool {
	return strings.HasSuffix(string(b), stripeSuffix)
}

// Base returns the solid colour name of the belt: "yellow" for
// "yellow_stripe", "black" for "black_3".
func (b Belt) Base() string {
	s := string(b)
	if i := strings.IndexByte(s, '_'); i > 0 {
		return s[:i]
	}
	return s
}

// Label returns the human readable name from [Belts], or "" for unknown
// tokens.
func (b Belt) Label() string {
	for _, opt := range Belts {
		if opt.Value == b {
			return opt.Label
		}
	}
	return ""
}

// Valid reports whether b is part of the catalogue.
func (b Belt) Valid() bool {
	return b.Label() != ""
}

// IsZero reports whether no belt is set.
func (b Belt) IsZero() bool {
	return b == ""
}
