// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/adapter"
	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/store"
	"github.com/MKhiriev/go-pass-import/internal/utils"
)

// Vault is an opened import target together with its release function.
type Vault struct {
	adapter.VaultAdapter

	// Kind is "http" for a remote vault and the SQL dialect for a local one.
	Kind  string
	close func() error
}

// Close releases the resources held by the vault.
func (v *Vault) Close() error {
	if v.close == nil {
		return nil
	}
	return v.close()
}

// OpenVault opens the remote vault when an adapter address is configured
// and the local SQL vault otherwise. The local vault is migrated before use.
func OpenVault(ctx context.Context, adapterCfg config.Adapter, storage config.Storage, log *logger.Logger) (*Vault, error) {
	if adapterCfg.HTTPAddress != "" {
		remote, err := adapter.NewHTTPVaultAdapter(adapterCfg, log)
		if err != nil {
			return nil, fmt.Errorf("create vault adapter: %w", err)
		}
		log.Info().Str("address", adapterCfg.HTTPAddress).Msg("using remote vault")
		return &Vault{VaultAdapter: remote, Kind: "http"}, nil
	}

	db, err := store.NewConnect(ctx, storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local vault: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate local vault: %w", err)
	}

	log.Info().Str("dialect", db.Dialect()).Msg("using local vault")
	return &Vault{
		VaultAdapter: store.NewLocalVault(db, utils.NewUUIDGenerator()),
		Kind:         db.Dialect(),
		close:        db.Close,
	}, nil
}
