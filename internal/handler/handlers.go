package handler

import (
	"github.com/MKhiriev/go-inspect-server/internal/config"
	"github.com/MKhiriev/go-inspect-server/internal/handler/http"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, http.Config{
			Inspect:        http.InspectConfig{LogEnabled: cfg.App.LogEnabled},
			RequestTimeout: cfg.Server.RequestTimeout,
		}, logger),
	}, nil
}
