// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultFolderID is the reserved identifier of the vault root folder.
// It is never created or updated and serves as the fallback parent for any
// folder or password whose folder reference cannot be resolved.
const DefaultFolderID = "00000000-0000-0000-0000-000000000000"

// Folder groups passwords and other folders into a hierarchy.
type Folder struct {
	// ID is the vault identifier of the folder. An empty ID marks a record
	// that has never been stored in the target vault.
	ID string `json:"id,omitempty"`

	// Revision is an opaque version token assigned by the vault on every write.
	Revision string `json:"revision,omitempty"`

	// Label is the human-readable folder name.
	Label string `json:"label"`

	// Parent is the identifier of the enclosing folder. A nil Parent means
	// the folder is attached to the vault root.
	Parent *string `json:"parent,omitempty"`

	Favorite *bool `json:"favorite,omitempty"`
	Hidden   *bool `json:"hidden,omitempty"`
}

// RecordID returns the folder identifier.
func (f Folder) RecordID() string { return f.ID }

// RecordRevision returns the folder revision token.
func (f Folder) RecordRevision() string { return f.Revision }

// RecordLabel returns the folder label.
func (f Folder) RecordLabel() string { return f.Label }

// IsRoot reports whether f is the vault root folder.
func (f Folder) IsRoot() bool { return f.ID == DefaultFolderID }

// ParentID returns the parent identifier or an empty string for root-bound
// folders.
func (f Folder) ParentID() string {
	if f.Parent == nil {
		return ""
	}
	return *f.Parent
}
