// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tag is a label that can be attached to any number of passwords.
type Tag struct {
	// ID is the vault identifier of the tag. An empty ID marks a record that
	// has never been stored in the target vault.
	ID string `json:"id,omitempty"`

	// Revision is an opaque version token assigned by the vault on every write.
	Revision string `json:"revision,omitempty"`

	// Label is the human-readable tag name.
	Label string `json:"label"`

	// Color is the display color in "#rrggbb" form.
	Color string `json:"color,omitempty"`

	Favorite *bool `json:"favorite,omitempty"`
	Hidden   *bool `json:"hidden,omitempty"`
}

// RecordID returns the tag identifier.
func (t Tag) RecordID() string { return t.ID }

// RecordRevision returns the tag revision token.
func (t Tag) RecordRevision() string { return t.Revision }

// RecordLabel returns the tag label.
func (t Tag) RecordLabel() string { return t.Label }
