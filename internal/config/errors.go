package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrNoVaultConfigured indicates that neither a remote vault address nor
	// a local vault DSN was provided.
	ErrNoVaultConfigured = errors.New("no vault configured: set an adapter address or a database DSN")
	// ErrInvalidAdapterConfigs indicates invalid remote vault settings
	// (for example, a user without a token).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidImportConfigs indicates invalid import defaults (unknown
	// mode, negative batch size, missing input file).
	ErrInvalidImportConfigs = errors.New("invalid import configuration")
)
