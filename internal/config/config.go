// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/rs/zerolog"
)

// Default values applied before any other source is merged.
const (
	DefaultHTTPAddress       = "0.0.0.0:3000"
	DefaultLogLevel          = "info"
	DefaultMaxPageSize       = 0
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultDotEnvPath        = ".env"
)

// StructuredConfig is the top-level configuration container of the inspect
// server. It is populated by merging defaults, a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: body logging gate, verbosity,
	// version and listing limits.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogEnabled turns on request and response body logging in the
	// inspection middleware. Request metadata is logged regardless.
	// Env: APP_LOG_ENABLED
	LogEnabled bool `env:"LOG_ENABLED"`

	// LogLevel is the verbosity threshold of the server logger
	// ("trace", "debug", "info", "warn", "error"). Response bodies are only
	// logged at "debug" or finer.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string reported by the /version endpoint.
	// When empty, the linker-injected build version is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// MaxPageSize is the largest page_size accepted by the listing endpoint.
	// Zero leaves page_size unbounded.
	// Env: APP_MAX_PAGE_SIZE
	MaxPageSize uint `env:"MAX_PAGE_SIZE"`
}

// Level returns LogLevel as a zerolog level. An unparsable value yields
// info; [StructuredConfig.validate] rejects such values at startup.
func (a App) Level() zerolog.Level {
	level, err := logger.ParseLevel(a.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:    DefaultLogLevel,
			MaxPageSize: DefaultMaxPageSize,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (only fills unset variables)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		build()
}
