// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-import/models"
)

func validateVault(adapter Adapter, storage Storage) error {
	if adapter.HTTPAddress == "" && storage.DB.DSN == "" {
		return ErrNoVaultConfigured
	}
	if adapter.HTTPAddress != "" && adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if (adapter.User == "") != (adapter.Token == "") {
		return fmt.Errorf("%w: user and token must be set together", ErrInvalidAdapterConfigs)
	}
	return nil
}

func validateImport(imp Import) error {
	if _, err := models.ParseConflictMode(imp.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImportConfigs, err)
	}
	if imp.BatchSize < 0 {
		return fmt.Errorf("%w: batch size must not be negative", ErrInvalidImportConfigs)
	}
	return nil
}

func (cfg *ImporterConfig) validate() error {
	if err := validateVault(cfg.Adapter, cfg.Storage); err != nil {
		return err
	}
	if err := validateImport(cfg.Import); err != nil {
		return err
	}
	if cfg.Import.InputFile == "" {
		return fmt.Errorf("%w: no input file given", ErrInvalidImportConfigs)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}
	if err := validateVault(cfg.Adapter, cfg.Storage); err != nil {
		return err
	}
	return validateImport(cfg.Import)
}
