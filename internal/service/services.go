package service

import (
	"github.com/MKhiriev/go-pass-import/internal/adapter"
	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/models"
)

type Services struct {
	ImportService  ImportService
	AppInfoService AppInfoService
}

func NewServices(vault adapter.VaultAdapter, converters ConverterRegistry, cfg config.Import, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	importService := NewImportService(vault, converters, logger,
		WithBatchSize(cfg.BatchSize),
		WithTranslator(i18n.NewTranslator(cfg.Locale)),
	)

	return &Services{
		ImportService:  NewImportLoggingWrapper(logger).Wrap(importService),
		AppInfoService: appInfo,
	}, nil
}
