// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportDataset is the common shape every input format is converted into.
//
// A nil slice pointer means the entity kind is absent from the input and the
// vault records of that kind must be left untouched. A non-nil pointer to an
// empty slice means the kind is present but carries no records.
type ImportDataset struct {
	Tags      *[]Tag      `json:"tags,omitempty"`
	Folders   *[]Folder   `json:"folders,omitempty"`
	Passwords *[]Password `json:"passwords,omitempty"`
}

// HasTags reports whether the dataset carries the tags kind.
func (d ImportDataset) HasTags() bool { return d.Tags != nil }

// HasFolders reports whether the dataset carries the folders kind.
func (d ImportDataset) HasFolders() bool { return d.Folders != nil }

// HasPasswords reports whether the dataset carries the passwords kind.
func (d ImportDataset) HasPasswords() bool { return d.Passwords != nil }

// Len returns the number of records of all present kinds.
func (d ImportDataset) Len() int {
	n := 0
	if d.Tags != nil {
		n += len(*d.Tags)
	}
	if d.Folders != nil {
		n += len(*d.Folders)
	}
	if d.Passwords != nil {
		n += len(*d.Passwords)
	}
	return n
}
