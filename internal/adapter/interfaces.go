// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the inspect server.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP details
// of the endpoints from callers such as the command-line client. Failure
// envelopes returned by the server are mapped by mapHTTPError to the sentinel
// errors in errors.go so that callers can use [errors.Is] (e.g.
// [ErrBadRequest] for 400, [ErrNotFound] for 404), while [*ResponseError]
// keeps the decoded envelope available through [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-inspect-server/models"
)

// ServerAdapter defines the operations exposed by the inspect server.
type ServerAdapter interface {
	// Hello calls GET / and returns the greeting text.
	Hello(ctx context.Context) (string, error)

	// ListItems calls GET /page with the given pagination and returns the
	// decoded items. A failure envelope is returned as an error wrapping one
	// of the package sentinels.
	ListItems(ctx context.Context, pagination models.Pagination) ([]models.Item, error)

	// Version calls GET /version and returns the version reported by the
	// server.
	Version(ctx context.Context) (string, error)
}
