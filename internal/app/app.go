package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/converter"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/service"
	"github.com/MKhiriev/go-pass-import/models"
)

// App holds the assembled services and the vault they write into.
type App struct {
	Services   *service.Services
	Converters *converter.Registry
	Vault      *Vault
}

func New(ctx context.Context, adapterCfg config.Adapter, storage config.Storage, importCfg config.Import, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	vault, err := OpenVault(ctx, adapterCfg, storage, log)
	if err != nil {
		return nil, err
	}

	converters := converter.NewRegistry()
	services, err := service.NewServices(vault, converters, importCfg, buildInfo, log)
	if err != nil {
		vault.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		Services:   services,
		Converters: converters,
		Vault:      vault,
	}, nil
}

// Close releases the vault.
func (a *App) Close() error {
	return a.Vault.Close()
}
