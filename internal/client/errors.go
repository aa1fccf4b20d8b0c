package client

import "errors"

// ErrReadingInput is returned when the input file cannot be read.
var ErrReadingInput = errors.New("error reading input file")
