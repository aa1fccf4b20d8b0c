package http

import (
	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	defaults config.Import

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg.Server,
		defaults: cfg.Import,
		logger:   logger,
	}
}
