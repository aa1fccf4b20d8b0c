// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportOptions carries the user choices for one import run.
type ImportOptions struct {
	// Mode is the conflict policy applied to every entity kind.
	Mode ConflictMode `json:"mode"`

	// SkipShared leaves passwords that belong to a share untouched.
	SkipShared bool `json:"skip_shared"`
}

// ImportOutcome accumulates the state of a single import run.
type ImportOutcome struct {
	// Processed is the number of records handled so far, including skipped
	// and failed ones.
	Processed int `json:"processed"`

	// Total is the number of records in all present entity kinds.
	Total int `json:"total"`

	// Errors holds the localized per-record failure messages in the order
	// they occurred.
	Errors []string `json:"errors"`

	// TagIDs, FolderIDs and PasswordIDs map imported identifiers to the
	// identifiers valid in the vault after the run.
	TagIDs      map[string]string `json:"tag_ids,omitempty"`
	FolderIDs   map[string]string `json:"folder_ids,omitempty"`
	PasswordIDs map[string]string `json:"password_ids,omitempty"`
}

// ImportPhase names a stage of an import run.
type ImportPhase string

const (
	PhaseParse     ImportPhase = "parse"
	PhaseTags      ImportPhase = "tags"
	PhaseFolders   ImportPhase = "folders"
	PhasePasswords ImportPhase = "passwords"
)

// ImportResult is the outcome of an import run: either a terminal failure
// of a whole phase or a completed run carrying per-record diagnostics.
type ImportResult struct {
	// Outcome holds the state accumulated up to completion or failure.
	Outcome ImportOutcome

	// FailedPhase is set when the run was aborted.
	FailedPhase ImportPhase

	err error
}

// Completed builds a successful result.
func Completed(outcome ImportOutcome) ImportResult {
	return ImportResult{Outcome: outcome}
}

// Failed builds a result for a run aborted in phase with err.
func Failed(phase ImportPhase, err error, outcome ImportOutcome) ImportResult {
	return ImportResult{Outcome: outcome, FailedPhase: phase, err: err}
}

// Err returns the terminal error of a failed run or nil.
func (r ImportResult) Err() error { return r.err }

// OK reports whether the run completed. A completed run may still carry
// per-record errors in Outcome.Errors.
func (r ImportResult) OK() bool { return r.err == nil }

// Partial reports whether the run completed with per-record failures.
func (r ImportResult) Partial() bool { return r.err == nil && len(r.Outcome.Errors) > 0 }
