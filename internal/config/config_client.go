package config

import (
	"fmt"
	"os"
)

// ImporterConfig is the validated configuration view of the command-line
// importer.
type ImporterConfig struct {
	Adapter Adapter
	Storage Storage
	Import  Import
	Log     Log
}

// GetImporterConfig builds and validates the importer configuration from
// the process environment, os.Args and the optional JSON file.
func GetImporterConfig() (*ImporterConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	importerCfg := &ImporterConfig{
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Import:  cfg.Import,
		Log:     cfg.Log,
	}

	return importerCfg, importerCfg.validate()
}

// ServerConfig is the validated configuration view of the import HTTP
// server.
type ServerConfig struct {
	Adapter Adapter
	Storage Storage
	Server  Server
	Import  Import
	Log     Log
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Import:  cfg.Import,
		Log:     cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}
