// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-inspect-server/internal/apperror"
	"github.com/MKhiriev/go-inspect-server/internal/capture"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/rs/zerolog"
)

// InspectConfig controls the inspection middleware.
type InspectConfig struct {
	// LogEnabled turns on body logging. Request method, target and protocol
	// are logged regardless.
	LogEnabled bool
}

// withInspection captures the request body, logs the request and hands a
// byte-identical body to next.
//
// Response bodies are only observed when body logging is enabled and the
// request logger emits debug records. In that case the handler writes into a
// per-request buffer that is logged and then copied unchanged to w. In every
// other case w is passed through untouched and the response streams as the
// handler writes it.
//
// A request body that cannot be read is answered with 400 before next runs.
func (h *Handler) withInspection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		captured, err := capture.Request(r, capture.Options{
			Logger:     log,
			LogEnabled: h.cfg.Inspect.LogEnabled,
			Level:      zerolog.InfoLevel,
		})
		if err != nil {
			log.Err(err).Str("func", "*Handler.withInspection").Msg("failed to capture request body")
			apperror.WriteResponse(w, apperror.Wrap(apperror.InvalidInput, detailMalformedRequest, err))
			return
		}

		log.Info().
			Str("method", captured.Method).
			Str("uri", captured.Target).
			Str("proto", captured.Proto).
			Int("body_size", captured.Len()).
			Msg("request")

		r.ContentLength = int64(captured.Len())
		r.Body = captured.Reader()

		if !h.cfg.Inspect.LogEnabled || !log.DebugEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		bw := newBufferedResponseWriter(w)
		next.ServeHTTP(bw, r)

		// the buffer is in memory, a cancelled client must not turn a
		// finished response into an error
		ctx := context.WithoutCancel(r.Context())
		response, err := capture.Body(ctx, capture.DirectionResponse, &bw.body, capture.Options{
			Logger:     log,
			LogEnabled: true,
			Level:      zerolog.DebugLevel,
		})
		if err != nil {
			log.Err(err).Str("func", "*Handler.withInspection").Msg("failed to capture response body")
			w.Header().Del("Content-Length")
			apperror.WriteResponse(w, apperror.Wrap(apperror.Generic, detailMalformedResponse, err))
			return
		}

		w.WriteHeader(bw.statusCode())
		if _, err = io.Copy(w, response.Reader()); err != nil {
			log.Err(err).Str("func", "*Handler.withInspection").Msg("failed to write response body")
		}
	})
}
