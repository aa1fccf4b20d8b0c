// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides access to the vault an import run writes into.
//
// The primary abstraction is [VaultAdapter], which decouples the import
// engine from the storage behind it. The package ships an HTTP/REST
// implementation ([NewHTTPVaultAdapter]) speaking the Passwords app API;
// the store package provides a local SQL implementation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-import/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines the record operations the import engine needs per
// entity kind. Implementations must be safe for concurrent use: an import
// phase issues many Create and Update calls at once.
type VaultAdapter interface {
	// ListTags returns every stored tag keyed by its identifier.
	ListTags(ctx context.Context) (map[string]models.Tag, error)
	// CreateTag stores tag as a new record and returns it with the
	// identifier and revision assigned by the vault. tag.ID is ignored.
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	// UpdateTag overwrites the stored tag with the same identifier.
	UpdateTag(ctx context.Context, tag models.Tag) error

	ListFolders(ctx context.Context) (map[string]models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) error

	ListPasswords(ctx context.Context) (map[string]models.Password, error)
	CreatePassword(ctx context.Context, password models.Password) (models.Password, error)
	UpdatePassword(ctx context.Context, password models.Password) error
}
