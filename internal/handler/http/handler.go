package http

import (
	"time"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/internal/service"
	"github.com/MKhiriev/go-inspect-server/internal/utils"
)

// Config carries the transport settings of the HTTP handler.
type Config struct {
	// Inspect controls body logging of the inspection middleware.
	Inspect InspectConfig

	// RequestTimeout cancels the request context after the given duration.
	// Zero disables the limit.
	RequestTimeout time.Duration
}

type Handler struct {
	services *service.Services
	cfg      Config
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
