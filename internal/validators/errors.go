package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel    = errors.New("label is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidColor  = errors.New("color must be in #rrggbb form")
)
