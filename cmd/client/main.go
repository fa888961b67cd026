package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-inspect-server/internal/adapter"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/models"
	"github.com/rs/zerolog"
)

func main() {
	address := flag.String("a", "localhost:3000", "inspect server address")
	page := flag.Uint("page", 1, "page number")
	pageSize := flag.Uint("page-size", 10, "number of items to request")
	showVersion := flag.Bool("version", false, "print the server version and exit")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := logger.NewLogger("inspect-client", level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{
		HTTPAddress:    *address,
		RequestTimeout: *timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *showVersion {
		version, err := serverAdapter.Version(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("get server version")
		}
		fmt.Println(version)
		return
	}

	items, err := serverAdapter.ListItems(ctx, models.Pagination{Page: *page, PageSize: *pageSize})
	if err != nil {
		log.Fatal().Err(err).Msg("list items")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(items); err != nil {
		log.Fatal().Err(err).Msg("print items")
	}
}
