package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, h http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(Config{HTTPAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	return a
}

func writeEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.NewFailureResponse(status, message))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "with scheme", raw: "https://example.com", want: "https://example.com"},
		{name: "trailing slash", raw: "http://example.com/", want: "http://example.com"},
		{name: "surrounding spaces", raw: "  127.0.0.1:8080 ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "spaces only", raw: "   ", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(Config{}, logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestListItems(t *testing.T) {
	var gotQuery string
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/page", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Item 1"},{"id":2,"name":"Item 2"}]`))
	}))

	items, err := a.ListItems(context.Background(), models.Pagination{Page: 3, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, []models.Item{{ID: 1, Name: "Item 1"}, {ID: 2, Name: "Item 2"}}, items)
	assert.Contains(t, gotQuery, "page=3")
	assert.Contains(t, gotQuery, "page_size=2")
}

func TestListItems_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		sentinel error
	}{
		{name: "bad request", status: http.StatusBadRequest, message: "Invalid input: page_size", sentinel: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, message: "Not Found", sentinel: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, message: "An error occurred: boom", sentinel: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, message: "Network error: down", sentinel: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, tt.message)
			}))

			items, err := a.ListItems(context.Background(), models.Pagination{Page: 1, PageSize: 1})
			require.Error(t, err)
			assert.Nil(t, items)
			assert.ErrorIs(t, err, tt.sentinel)

			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.StatusCode)
			require.NotNil(t, respErr.Envelope)
			assert.False(t, respErr.Envelope.Success)
			assert.Equal(t, tt.message, respErr.Envelope.Message)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestListItems_NonEnvelopeError(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))

	_, err := a.ListItems(context.Background(), models.Pagination{Page: 1, PageSize: 1})
	require.Error(t, err)

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusTeapot, respErr.StatusCode)
	assert.Nil(t, respErr.Envelope)
	assert.Equal(t, "teapot", respErr.Body)
	assert.Contains(t, err.Error(), "http 418")
}

func TestListItems_MalformedBody(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := a.ListItems(context.Background(), models.Pagination{Page: 1, PageSize: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode list items response")
}

func TestHelloAndVersion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello, World!"))
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v1.2.3\n"))
	})
	a := newTestAdapter(t, mux)

	hello, err := a.Hello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", hello)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}

func TestVersion_CancelledContext(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v1"))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Version(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
