// Package http implements the HTTP transport layer of the inspect server.
//
// It exposes route wiring, request handlers, and the middleware stack that
// wraps every route: panic recovery, CORS, response compression, request
// tracing, access logging and body inspection. Failures are reported with the
// JSON envelope produced by the apperror package.
package http
