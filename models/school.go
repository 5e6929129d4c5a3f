// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// SchoolRefKind tells which shape the account service used for the school
// field.
type SchoolRefKind int

const (
	// SchoolRefNone means the school was missing, null or unrecognised.
	SchoolRefNone SchoolRefKind = iota
	// SchoolRefName means the school was sent as a bare string.
	SchoolRefName
	// SchoolRefDetailed means the school was sent as an object with a name
	// and an optional logo URL.
	SchoolRefDetailed
)

// SchoolRef is the decoded school field of the current-user response. The
// service sends either a plain name or a {name, logoUrl} object; the shape is
// resolved once here so nothing downstream inspects raw JSON.
type SchoolRef struct {
	Kind    SchoolRefKind
	Name    string
	LogoURL string
}

// SchoolName builds a [SchoolRefName] reference.
func SchoolName(name string) SchoolRef {
	if name == "" {
		return SchoolRef{}
	}
	return SchoolRef{Kind: SchoolRefName, Name: name}
}

// DetailedSchool builds a [SchoolRefDetailed] reference.
func DetailedSchool(name, logoURL string) SchoolRef {
	return SchoolRef{Kind: SchoolRefDetailed, Name: name, LogoURL: logoURL}
}

type schoolObject struct {
	ID      string  `json:"_id,omitempty"`
	Name    *string `json:"name"`
	LogoURL string  `json:"logoUrl,omitempty"`
}

// UnmarshalJSON accepts a string, an object carrying a "name" key, or
// anything else, which decodes to [SchoolRefNone] instead of failing.
func (s *SchoolRef) UnmarshalJSON(data []byte) error {
	*s = SchoolRef{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = SchoolName(name)
	case '{':
		var obj schoolObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Name == nil {
			return nil
		}
		*s = DetailedSchool(*obj.Name, obj.LogoURL)
	}

	return nil
}

// MarshalJSON writes the reference back in the shape it was received in.
func (s SchoolRef) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SchoolRefName:
		return json.Marshal(s.Name)
	case SchoolRefDetailed:
		name := s.Name
		return json.Marshal(schoolObject{Name: &name, LogoURL: s.LogoURL})
	default:
		return []byte("null"), nil
	}
}
