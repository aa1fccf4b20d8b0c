// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors reported with 400 Bad Request before the import starts.
var (
	// ErrEmptyBody is returned when the upload carries no data.
	ErrEmptyBody = errors.New("empty request body")

	// ErrInvalidSkipShared is returned when the skipShared query parameter
	// is not a boolean.
	ErrInvalidSkipShared = errors.New("invalid `skipShared` query parameter")

	// ErrReadingBody is returned when the upload cannot be read completely.
	ErrReadingBody = errors.New("error reading request body")
)
