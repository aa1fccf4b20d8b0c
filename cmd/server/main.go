package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/app"
	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/handler"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/server"
	"github.com/MKhiriev/go-pass-import/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pass-import-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Log.Level != "" && !logger.SetLevel(cfg.Log.Level) {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("vault", cfg.Adapter.HTTPAddress).Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	importer, err := app.New(context.Background(), cfg.Adapter, cfg.Storage, cfg.Import, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer importer.Close()

	handlers, err := handler.NewHandlers(importer.Services, config.StructuredConfig{
		Server: cfg.Server,
		Import: cfg.Import,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
