package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/service"
	"github.com/MKhiriev/go-pass-import/internal/tui"
	"github.com/MKhiriev/go-pass-import/models"
)

// Exit codes of the importer command.
const (
	ExitOK      = 0
	ExitFailed  = 1
	ExitPartial = 2
)

type App struct {
	importer service.ImportService
	cfg      config.Import
	out      io.Writer
	progress *tui.Progress

	logger *logger.Logger
}

// NewApp returns the importer runtime. Progress and the report go to out;
// interactive enables the in-place progress bar.
func NewApp(importer service.ImportService, cfg config.Import, out io.Writer, interactive bool, logger *logger.Logger) *App {
	return &App{
		importer: importer,
		cfg:      cfg,
		out:      out,
		progress: tui.NewProgress(out, interactive),
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context) (models.ImportResult, error) {
	raw, err := os.ReadFile(a.cfg.InputFile)
	if err != nil {
		a.logger.Err(err).Str("file", a.cfg.InputFile).Msg("error reading input file")
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrReadingInput, err)
	}

	mode, err := models.ParseConflictMode(a.cfg.Mode)
	if err != nil {
		a.logger.Warn().Err(err).Str("mode", a.cfg.Mode).Msg("unknown conflict mode, creating new records instead")
	}
	opts := models.ImportOptions{Mode: mode, SkipShared: !a.cfg.IncludeShared}

	a.logger.Debug().
		Str("file", a.cfg.InputFile).
		Str("type", a.cfg.InputType).
		Str("mode", mode.String()).
		Bool("skip_shared", opts.SkipShared).
		Msg("starting import")

	result := a.importer.Import(ctx, raw, a.cfg.InputType, opts, a.progress.Update)
	a.progress.Done()

	fmt.Fprintln(a.out, tui.RenderSummary(result))
	return result, nil
}

// ExitCode maps an import result to the process exit code.
func ExitCode(result models.ImportResult) int {
	switch {
	case !result.OK():
		return ExitFailed
	case result.Partial():
		return ExitPartial
	default:
		return ExitOK
	}
}
