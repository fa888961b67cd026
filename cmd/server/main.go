package main

import (
	"fmt"

	"github.com/MKhiriev/go-inspect-server/internal/config"
	"github.com/MKhiriev/go-inspect-server/internal/handler"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/internal/server"
	"github.com/MKhiriev/go-inspect-server/internal/service"
	"github.com/MKhiriev/go-inspect-server/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("inspect-server", zerolog.InfoLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("inspect-server", cfg.App.Level())
	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
