// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/adapter"
	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/utils"
	"github.com/MKhiriev/go-pass-import/internal/workers"
	"github.com/MKhiriev/go-pass-import/models"
)

type importService struct {
	vault      adapter.VaultAdapter
	converters ConverterRegistry
	translator i18n.Translator
	ids        IDGenerator
	batchSize  int

	logger *logger.Logger
}

// ImportOption configures the import service.
type ImportOption func(*importService)

// WithBatchSize sets the number of concurrent vault writes per batch.
func WithBatchSize(n int) ImportOption {
	return func(s *importService) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithTranslator sets the translator of per-record error messages.
func WithTranslator(t i18n.Translator) ImportOption {
	return func(s *importService) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithIDGenerator sets the generator of import run identifiers.
func WithIDGenerator(g IDGenerator) ImportOption {
	return func(s *importService) {
		if g != nil {
			s.ids = g
		}
	}
}

func NewImportService(vault adapter.VaultAdapter, converters ConverterRegistry, logger *logger.Logger, opts ...ImportOption) ImportService {
	s := &importService{
		vault:      vault,
		converters: converters,
		translator: i18n.NewTranslator(i18n.DefaultLocale),
		ids:        utils.NewUUIDGenerator(),
		batchSize:  workers.DefaultLimit,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// importRun is the state of a single Import call. Nothing in it outlives
// the call.
type importRun struct {
	mode       models.ConflictMode
	skipShared bool
	progress   *progressReporter
	logger     *logger.Logger
}

func (s *importService) Import(ctx context.Context, raw []byte, inputType string, opts models.ImportOptions, progress ProgressFunc) models.ImportResult {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		runID = s.ids.Generate()
		ctx = utils.WithRunID(ctx, runID)
	}

	mode := opts.Mode.Normalize()
	log := s.logger.ForRun(runID, mode.String())
	if mode != opts.Mode {
		log.Warn().
			Int("requested_mode", int(opts.Mode)).
			Msg("unknown conflict mode, creating new records instead")
	}
	if locale, fallback := s.translator.Locale(); fallback {
		log.Debug().Str("locale", locale).Msg("no message catalog for the configured locale, using untranslated messages")
	}
	ctx = log.WithContext(ctx)

	run := &importRun{
		mode:       mode,
		skipShared: opts.SkipShared,
		progress:   newProgressReporter(progress, s.translator, log),
		logger:     log,
	}

	run.progress.start(1)
	run.progress.phase(StatusParsing)
	dataset, warnings, err := s.convert(ctx, raw, inputType, opts)
	if err != nil {
		return s.fail(run, models.PhaseParse, fmt.Errorf("%w: %w", ErrConvertInput, err), models.ImportOutcome{})
	}

	run.progress.start(dataset.Len())
	run.progress.warn(warnings...)

	var tagIDs, folderIDs, passwordIDs *IdentifierMap
	result := func() models.ImportOutcome {
		outcome := run.progress.outcome()
		if tagIDs != nil && dataset.HasTags() {
			outcome.TagIDs = tagIDs.Snapshot()
		}
		if folderIDs != nil && dataset.HasFolders() {
			outcome.FolderIDs = folderIDs.Snapshot()
		}
		if passwordIDs != nil {
			outcome.PasswordIDs = passwordIDs.Snapshot()
		}
		return outcome
	}

	if dataset.HasTags() {
		if tagIDs, err = s.importTags(ctx, run, *dataset.Tags); err != nil {
			return s.fail(run, models.PhaseTags, fmt.Errorf("%w: %w", ErrUnableToCreateTags, err), result())
		}
	}

	if dataset.HasFolders() {
		if folderIDs, err = s.importFolders(ctx, run, *dataset.Folders); err != nil {
			return s.fail(run, models.PhaseFolders, fmt.Errorf("%w: %w", ErrUnableToCreateFolders, err), result())
		}
	}

	if dataset.HasPasswords() {
		if passwordIDs, err = s.importPasswords(ctx, run, *dataset.Passwords, tagIDs, folderIDs); err != nil {
			return s.fail(run, models.PhasePasswords, fmt.Errorf("%w: %w", ErrUnableToCreatePasswords, err), result())
		}
	}

	outcome := result()
	log.Info().
		Int("processed", outcome.Processed).
		Int("total", outcome.Total).
		Int("errors", len(outcome.Errors)).
		Msg("import finished")

	return models.Completed(outcome)
}

func (s *importService) convert(ctx context.Context, raw []byte, inputType string, opts models.ImportOptions) (models.ImportDataset, []string, error) {
	conv, err := s.converters.Lookup(inputType)
	if err != nil {
		return models.ImportDataset{}, nil, err
	}
	return conv.Convert(ctx, raw, opts)
}

func (s *importService) fail(run *importRun, phase models.ImportPhase, err error, outcome models.ImportOutcome) models.ImportResult {
	run.logger.Error().Err(err).Str("phase", string(phase)).Msg("import aborted")
	return models.Failed(phase, err, outcome)
}

func (s *importService) newBatch(ctx context.Context, run *importRun) *workers.Batch {
	return workers.NewBatch(ctx, s.batchSize, workers.WithSettleHook(func(size int) {
		run.logger.Debug().Int("size", size).Msg("batch settled")
	}))
}
