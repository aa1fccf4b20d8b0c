package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/utils"
	"github.com/MKhiriev/go-pass-import/models"
)

type importLoggingWrapper struct {
	logger *logger.Logger
}

// NewImportLoggingWrapper returns a wrapper logging the duration and the
// result of every import run.
func NewImportLoggingWrapper(logger *logger.Logger) ImportServiceWrapper {
	return &importLoggingWrapper{logger: logger}
}

func (w *importLoggingWrapper) Wrap(next ImportService) ImportService {
	return &loggedImportService{next: next, logger: w.logger}
}

type loggedImportService struct {
	next   ImportService
	logger *logger.Logger
}

func (s *loggedImportService) Import(ctx context.Context, raw []byte, inputType string, opts models.ImportOptions, progress ProgressFunc) models.ImportResult {
	start := time.Now()
	result := s.next.Import(ctx, raw, inputType, opts, progress)

	event := s.logger.Info()
	if !result.OK() {
		event = s.logger.Error().Err(result.Err()).Str("failed_phase", string(result.FailedPhase))
	}
	event.
		Str("type", inputType).
		Int("bytes", len(raw)).
		Str("digest", utils.Digest(raw)).
		Int("processed", result.Outcome.Processed).
		Int("errors", len(result.Outcome.Errors)).
		Dur("duration", time.Since(start)).
		Msg("import run")

	return result
}
