// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inspect-server/internal/utils"
	"github.com/MKhiriev/go-inspect-server/models"
)

// Details attached to errors raised by the transport layer itself.
const (
	detailMalformedRequest  = "malformed request"
	detailMalformedResponse = "malformed response"
	detailInvalidQuery      = "invalid query parameters"
	detailInvalidEncoding   = "invalid content encoding"
)

var errMissingQueryParam = errors.New("missing query parameter")

// writeNotFound answers with a 404 envelope. Unknown routes and unregistered
// methods are reported the same way.
func writeNotFound(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusNotFound
	_, _ = utils.WriteJSON(w, models.NewFailureResponse(status, http.StatusText(status)), status)
}
