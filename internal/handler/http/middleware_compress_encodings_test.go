package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiateEncoding(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		want           string
	}{
		{name: "empty header", acceptEncoding: "", want: ""},
		{name: "identity only", acceptEncoding: "identity", want: ""},
		{name: "single gzip", acceptEncoding: "gzip", want: encodingGzip},
		{name: "single br", acceptEncoding: "br", want: encodingBrotli},
		{name: "single zstd", acceptEncoding: "zstd", want: encodingZstd},
		{name: "single deflate", acceptEncoding: "deflate", want: encodingDeflate},
		{name: "tie prefers gzip", acceptEncoding: "deflate, br, gzip, zstd", want: encodingGzip},
		{name: "tie without gzip prefers br", acceptEncoding: "zstd, deflate, br", want: encodingBrotli},
		{name: "higher q wins", acceptEncoding: "gzip;q=0.5, br;q=0.9", want: encodingBrotli},
		{name: "q=0 excludes", acceptEncoding: "gzip;q=0, zstd", want: encodingZstd},
		{name: "all excluded", acceptEncoding: "gzip;q=0, br;q=0", want: ""},
		{name: "wildcard", acceptEncoding: "*", want: encodingGzip},
		{name: "wildcard does not revive excluded", acceptEncoding: "gzip;q=0, *", want: encodingBrotli},
		{name: "wildcard excluded", acceptEncoding: "*;q=0", want: ""},
		{name: "explicit beats lower wildcard", acceptEncoding: "*;q=0.1, deflate;q=0.5", want: encodingDeflate},
		{name: "case and spaces", acceptEncoding: "  GZIP ; Q=0.8 ", want: encodingGzip},
		{name: "x-gzip alias", acceptEncoding: "x-gzip", want: encodingGzip},
		{name: "invalid q ignored", acceptEncoding: "gzip;q=abc, br;q=0.2", want: encodingBrotli},
		{name: "unknown coding", acceptEncoding: "compress", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, negotiateEncoding(tt.acceptEncoding))
		})
	}
}

func decodeBody(t *testing.T, encoding string, body []byte) string {
	t.Helper()

	var r io.Reader
	switch encoding {
	case encodingGzip:
		gr, err := gzip.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer gr.Close()
		r = gr
	case encodingBrotli:
		r = brotli.NewReader(bytes.NewReader(body))
	case encodingZstd:
		zr, err := zstd.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer zr.Close()
		r = zr
	case encodingDeflate:
		zr, err := zlib.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer zr.Close()
		r = zr
	default:
		return string(body)
	}

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(decoded)
}

func TestCompression_AllEncodingsRoundTrip(t *testing.T) {
	payload := strings.Repeat(`{"id":1,"name":"Item 1"}`, 200)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "999")
		_, _ = w.Write([]byte(payload))
	})

	for _, encoding := range supportedEncodings {
		t.Run(encoding, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/page", nil)
			req.Header.Set("Accept-Encoding", encoding)
			rr := httptest.NewRecorder()

			withCompression(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, encoding, rr.Header().Get("Content-Encoding"))
			assert.Empty(t, rr.Header().Get("Content-Length"), "stale length must be dropped")
			assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
			assert.Less(t, rr.Body.Len(), len(payload))
			assert.Equal(t, payload, decodeBody(t, encoding, rr.Body.Bytes()))
		})
	}
}

func TestCompression_VaryWithoutAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	withCompression(next).ServeHTTP(rr, req)

	assert.Equal(t, "plain", rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
}

func TestCompression_AlreadyEncodedPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "identity")
		_, _ = w.Write([]byte("raw"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withCompression(next).ServeHTTP(rr, req)

	assert.Equal(t, "identity", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "raw", rr.Body.String())
}

func TestCompression_NotModifiedPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rr := httptest.NewRecorder()
	withCompression(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotModified, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestCompression_HeadPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withCompression(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
}

func TestCompression_DetectsContentTypeBeforeEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withCompression(next).ServeHTTP(rr, req)

	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<html><body>hello</body></html>", decodeBody(t, encodingGzip, rr.Body.Bytes()))
}

func TestCompression_FlushEmitsEncodedChunk(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("first chunk"))
		w.(http.Flusher).Flush()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withCompression(next).ServeHTTP(rr, req)

	assert.True(t, rr.Flushed)
	assert.Equal(t, "first chunk", decodeBody(t, encodingGzip, rr.Body.Bytes()))
}

func TestCompression_CorruptGzipMidStream(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = gw.Write([]byte(strings.Repeat("payload ", 100)))
	require.NoError(t, gw.Close())
	truncated := buf.Bytes()[:buf.Len()/2]

	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(truncated))
	req.Header.Set("Content-Encoding", "gzip")
	withCompression(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Error(t, readErr, "truncated stream must surface as a read error")
}
