package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-pass-import/internal/app"
	"github.com/MKhiriev/go-pass-import/internal/client"
	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/tui"
	"github.com/MKhiriev/go-pass-import/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(valueOrNA(buildVersion), buildDate, buildCommit)
	fmt.Println(tui.RenderBuildInfo("go-pass-import", buildInfo))

	log := logger.NewConsoleLogger("go-pass-import", os.Stderr)
	cfg, err := config.GetImporterConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return client.ExitFailed
	}
	if cfg.Log.Level != "" && !logger.SetLevel(cfg.Log.Level) {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	importer, err := app.New(ctx, cfg.Adapter, cfg.Storage, cfg.Import, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating importer")
		return client.ExitFailed
	}
	defer importer.Close()

	interactive := isatty.IsTerminal(os.Stdout.Fd())
	result, err := client.NewApp(importer.Services.ImportService, cfg.Import, os.Stdout, interactive, log).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("import did not start")
		return client.ExitFailed
	}

	return client.ExitCode(result)
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
