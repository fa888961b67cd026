// Package server wires and runs the HTTP transport of the inspect server.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown bounded by the configured timeout.
package server
