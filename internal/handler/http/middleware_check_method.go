// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour and answers with the
// same 404 envelope as an unknown route, hiding the existence of the route
// from callers that use an unsupported method.
//
// The route lookup only serves the debug record; it compares each route's
// pattern against the raw request path ([http.Request.URL.Path]).
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		for _, route := range router.Routes() {
			if route.Pattern != requestedURL {
				continue
			}

			methods := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				methods = append(methods, method)
			}
			logger.FromRequest(r).Debug().
				Str("uri", requestedURL).
				Str("method", r.Method).
				Strs("registered_methods", methods).
				Msg("method is not registered for route")
			break
		}

		writeNotFound(w, r)
	}
}
