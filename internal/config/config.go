// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the connection settings of the remote vault API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the settings of the local SQL vault used when no remote
	// vault address is configured.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the settings of the import HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Import holds the defaults applied to every import run.
	Import Import `envPrefix:"IMPORT_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds connection settings of the remote vault API.
type Adapter struct {
	// HTTPAddress is the base URL of the vault API
	// (e.g. "https://cloud.example.com/index.php/apps/passwords").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// User is the account name sent with HTTP basic authentication.
	// Env: ADAPTER_USER
	User string `env:"USER"`

	// Token is the application password sent with HTTP basic authentication.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every single vault request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local vault settings.
type Storage struct {
	// DB holds the SQL connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local SQL vault.
type DB struct {
	// DSN selects the driver by its scheme: "postgres://..." or
	// "postgresql://..." uses PostgreSQL, anything else is treated as a
	// SQLite file path (optionally prefixed with "sqlite://" or "file:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the import HTTP API.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a whole import request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits the accepted request body in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Import holds the defaults of an import run.
type Import struct {
	// Mode is the conflict policy, numeric ("0".."4") or by name
	// ("skip-unchanged", "skip-existing", "overwrite", "merge", "create-new").
	// Env: IMPORT_MODE
	Mode string `env:"MODE"`

	// IncludeShared also updates passwords that belong to a share. Shared
	// passwords are skipped by default.
	// Env: IMPORT_INCLUDE_SHARED
	IncludeShared bool `env:"INCLUDE_SHARED"`

	// BatchSize is the number of concurrent vault writes per batch.
	// Env: IMPORT_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// Locale selects the language of per-record error messages.
	// Env: IMPORT_LOCALE
	Locale string `env:"LOCALE"`

	// InputFile is the path of the file to import (CLI only).
	// Env: IMPORT_FILE
	InputFile string `env:"FILE"`

	// InputType is the format of the input file (CLI only).
	// Env: IMPORT_TYPE
	InputType string `env:"TYPE"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimal level written ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied by [StructuredConfig.applyDefaults] to fields no source
// has set.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxUploadSize  = 32 << 20
	DefaultBatchSize      = 16
	DefaultInputType      = "json"
	DefaultLocale         = "en"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 10 * DefaultRequestTimeout
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.Import.BatchSize == 0 {
		cfg.Import.BatchSize = DefaultBatchSize
	}
	if cfg.Import.InputType == "" {
		cfg.Import.InputType = DefaultInputType
	}
	if cfg.Import.Locale == "" {
		cfg.Import.Locale = DefaultLocale
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments. The result is not validated; use
// [GetImporterConfig] or [GetServerConfig] for a validated view.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
