// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-import/models"
)

// Client defines the lifecycle contract of the command-line importer.
type Client interface {
	// Run performs one import and blocks until it has finished. The error
	// is reserved for failures before the import could start.
	Run(ctx context.Context) (models.ImportResult, error)
}
