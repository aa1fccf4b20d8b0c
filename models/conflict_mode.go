// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ConflictMode selects how an imported record is reconciled with a record
// of the same identifier already stored in the vault.
type ConflictMode int

const (
	// SkipIfUnchanged skips records whose revision equals the stored one and
	// overwrites the others.
	SkipIfUnchanged ConflictMode = 0

	// AlwaysSkipExisting never touches records that already exist.
	AlwaysSkipExisting ConflictMode = 1

	// OverwriteExisting replaces every existing record with the imported one.
	OverwriteExisting ConflictMode = 2

	// MergeFields copies the fields present in the imported record over the
	// stored record and writes the result.
	MergeFields ConflictMode = 3

	// AlwaysCreateNew creates a new record for every imported one, even when
	// a record with the same identifier exists.
	AlwaysCreateNew ConflictMode = 4
)

// ErrUnknownConflictMode is returned by [ParseConflictMode] when the value
// does not name a known mode.
var ErrUnknownConflictMode = errors.New("unknown conflict mode")

var conflictModeNames = map[ConflictMode]string{
	SkipIfUnchanged:    "skip-unchanged",
	AlwaysSkipExisting: "skip-existing",
	OverwriteExisting:  "overwrite",
	MergeFields:        "merge",
	AlwaysCreateNew:    "create-new",
}

// String returns the canonical name of the mode.
func (m ConflictMode) String() string {
	if name, ok := conflictModeNames[m]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is one of the defined modes.
func (m ConflictMode) Valid() bool {
	_, ok := conflictModeNames[m]
	return ok
}

// Normalize returns m unchanged when it is a defined mode and
// [AlwaysCreateNew] otherwise. Creating a new record is the only decision
// that can never overwrite vault data.
func (m ConflictMode) Normalize() ConflictMode {
	if m.Valid() {
		return m
	}
	return AlwaysCreateNew
}

// ParseConflictMode accepts either the numeric policy id ("0".."4") or the
// canonical name ("skip-unchanged", "merge", ...).
//
// Unknown values yield [AlwaysCreateNew] together with an error wrapping
// [ErrUnknownConflictMode], so callers may either reject the input or log
// the coercion and continue.
func ParseConflictMode(s string) (ConflictMode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return SkipIfUnchanged, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		m := ConflictMode(n)
		if !m.Valid() {
			return AlwaysCreateNew, fmt.Errorf("%w: %d", ErrUnknownConflictMode, n)
		}
		return m, nil
	}

	for m, name := range conflictModeNames {
		if name == s {
			return m, nil
		}
	}

	return AlwaysCreateNew, fmt.Errorf("%w: %q", ErrUnknownConflictMode, s)
}
