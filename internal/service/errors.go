package service

import "errors"

var (
	// ErrConvertInput marks a failure to read the input as a whole.
	ErrConvertInput = errors.New("unable to read input file")

	ErrUnableToCreateTags      = errors.New("unable to create tags")
	ErrUnableToCreateFolders   = errors.New("unable to create folders")
	ErrUnableToCreatePasswords = errors.New("unable to create passwords")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
