package server

import "context"

// Server is the lifecycle of the inspect server's transport.
type Server interface {
	// RunServer serves until a stop signal arrives and the server has shut
	// down. It returns early with an error if the listener cannot be served.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
