package converter

import "errors"

var (
	// ErrUnsupportedImportType is returned for input types no converter is
	// registered for.
	ErrUnsupportedImportType = errors.New("unsupported import type")

	// ErrMalformedInput is returned when the input cannot be decoded.
	ErrMalformedInput = errors.New("malformed import input")

	// ErrEmptyInput is returned for empty input.
	ErrEmptyInput = errors.New("empty import input")
)
