// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Password is a single credential entry of the vault.
type Password struct {
	// ID is the vault identifier of the password. An empty ID marks a record
	// that has never been stored in the target vault.
	ID string `json:"id,omitempty"`

	// Revision is an opaque version token assigned by the vault on every write.
	Revision string `json:"revision,omitempty"`

	Label    string `json:"label"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`

	// Folder is the identifier of the folder holding the password.
	Folder string `json:"folder,omitempty"`

	// Tags lists the identifiers of the tags attached to the password.
	Tags []string `json:"tags,omitempty"`

	Favorite *bool `json:"favorite,omitempty"`
	Hidden   *bool `json:"hidden,omitempty"`

	// Share is the identifier of the share the stored password belongs to.
	// Only meaningful on records read from the vault; nil means not shared.
	Share *string `json:"share,omitempty"`

	// Editable reports whether the current user may modify the stored
	// password. Only meaningful on records read from the vault; nil is
	// treated as editable.
	Editable *bool `json:"editable,omitempty"`
}

// RecordID returns the password identifier.
func (p Password) RecordID() string { return p.ID }

// RecordRevision returns the password revision token.
func (p Password) RecordRevision() string { return p.Revision }

// RecordLabel returns the password label.
func (p Password) RecordLabel() string { return p.Label }

// IsShared reports whether the stored password belongs to a share.
func (p Password) IsShared() bool { return p.Share != nil }

// IsEditable reports whether the stored password may be modified.
func (p Password) IsEditable() bool { return p.Editable == nil || *p.Editable }
