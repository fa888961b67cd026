package service

import (
	"fmt"

	"github.com/MKhiriev/go-inspect-server/internal/config"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/models"
)

type Services struct {
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating services...")

	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ItemService:    NewItemValidationService(cfg.MaxPageSize).Wrap(NewItemService()),
		AppInfoService: appInfoService,
	}, nil
}
