// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/rs/zerolog"
)

// Direction labels used in log records and errors.
const (
	DirectionRequest  = "request"
	DirectionResponse = "response"
)

// Options controls how a successful capture is logged.
type Options struct {
	// Logger receives the body record. A nil Logger disables body logging.
	Logger *logger.Logger

	// LogEnabled gates body logging.
	LogEnabled bool

	// Level is the level of the body record.
	Level zerolog.Level
}

// Captured is a fully drained body. On the request path it also records the
// head of the originating message.
type Captured struct {
	Method string
	Target string
	Proto  string
	Header http.Header

	body     []byte
	size     int
	consumed bool
}

// Len returns the number of captured bytes. It stays valid after the buffer
// has been handed over.
func (c *Captured) Len() int {
	return c.size
}

// Bytes returns the captured buffer while it is still owned by c.
// Callers must not modify the returned slice.
func (c *Captured) Bytes() ([]byte, error) {
	if c.consumed {
		return nil, ErrAlreadyConsumed
	}
	return c.body, nil
}

// Reader hands the buffer over to a new body. The first call transfers
// ownership; later calls return an empty body.
func (c *Captured) Reader() io.ReadCloser {
	if c.consumed || c.size == 0 {
		c.consumed = true
		c.body = nil
		return http.NoBody
	}

	b := c.body
	c.body = nil
	c.consumed = true

	return io.NopCloser(bytes.NewReader(b))
}

// Body drains r into memory, concatenating chunks in arrival order.
//
// Reading stops with an [*Error] if r fails or ctx is cancelled; whatever was
// read so far is discarded. When opts.LogEnabled is set and the buffer is
// valid UTF-8, a single record with the direction and decoded text is
// written at opts.Level. Non-text bodies are never decoded.
func Body(ctx context.Context, direction string, r io.Reader, opts Options) (*Captured, error) {
	c := &Captured{}
	if r == nil || r == http.NoBody {
		logBody(direction, nil, opts)
		return c, nil
	}

	body, err := io.ReadAll(&contextReader{ctx: ctx, r: r})
	if err != nil {
		return nil, &Error{Direction: direction, Err: err}
	}

	c.body = body
	c.size = len(body)

	logBody(direction, c.body, opts)

	return c, nil
}

// Request drains the body of r and records its head. The original body is
// closed; the caller installs the replacement via [Captured.Reader].
func Request(r *http.Request, opts Options) (*Captured, error) {
	c, err := Body(r.Context(), DirectionRequest, r.Body, opts)
	if r.Body != nil {
		_ = r.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	c.Method = r.Method
	c.Target = r.RequestURI
	if c.Target == "" {
		c.Target = r.URL.RequestURI()
	}
	c.Proto = r.Proto
	c.Header = r.Header.Clone()

	return c, nil
}

func logBody(direction string, body []byte, opts Options) {
	if !opts.LogEnabled || opts.Logger == nil {
		return
	}
	if !utf8.Valid(body) {
		return
	}

	opts.Logger.WithLevel(opts.Level).
		Str("direction", direction).
		Str("body", string(body)).
		Msgf("%s body", direction)
}

// contextReader fails reads once ctx is done so an abandoned request stops
// draining at the next chunk boundary.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
