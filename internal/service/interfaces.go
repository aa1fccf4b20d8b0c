package service

import (
	"context"

	"github.com/MKhiriev/go-pass-import/internal/converter"
	"github.com/MKhiriev/go-pass-import/models"
)

// ProgressFunc receives progress updates of an import run. status carries a
// phase label at the start of a phase and is empty for per-record updates.
// It is called synchronously and must not block.
type ProgressFunc func(processed, total int, status string)

type ImportService interface {
	// Import converts raw input of inputType and reconciles the resulting
	// tags, folders and passwords with the vault. Per-record failures are
	// collected in the outcome; only phase-level failures fail the result.
	Import(ctx context.Context, raw []byte, inputType string, opts models.ImportOptions, progress ProgressFunc) models.ImportResult
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// ConverterRegistry resolves the converter of an input type.
type ConverterRegistry interface {
	Lookup(inputType string) (converter.Converter, error)
}

// IDGenerator produces import run identifiers.
type IDGenerator interface {
	Generate() string
}

// ImportServiceWrapper defines middleware composition for ImportService.
// Implementations wrap an existing ImportService to add behavior such as
// logging.
type ImportServiceWrapper interface {
	Wrap(ImportService) ImportService
}
