package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-inspect-server/internal/apperror"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

const (
	encodingGzip    = "gzip"
	encodingBrotli  = "br"
	encodingZstd    = "zstd"
	encodingDeflate = "deflate"
)

// compressor is the common surface of the pooled response encoders.
type compressor interface {
	io.WriteCloser
	Flush() error
	Reset(w io.Writer)
}

// supportedEncodings lists response encodings in order of preference used to
// break ties between equal q-values.
var supportedEncodings = []string{encodingGzip, encodingBrotli, encodingZstd, encodingDeflate}

var compressorPools = map[string]*sync.Pool{
	encodingGzip: {
		New: func() any {
			return gzip.NewWriter(nil)
		},
	},
	encodingBrotli: {
		New: func() any {
			return brotli.NewWriter(nil)
		},
	},
	encodingZstd: {
		New: func() any {
			// options are static and valid, NewWriter cannot fail with them
			enc, _ := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
			return enc
		},
	},
	encodingDeflate: {
		New: func() any {
			return zlib.NewWriter(nil)
		},
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withCompression decompresses gzip request bodies and compresses responses
// with the encoding negotiated from Accept-Encoding.
func withCompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		isGzipRequest := strings.Contains(req.Header.Get("Content-Encoding"), encodingGzip)

		if isGzipRequest && req.Body != nil && req.Body != http.NoBody {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				logger.FromRequest(req).Err(err).Str("func", "withCompression").Msg("invalid gzip request body")
				apperror.WriteResponse(w, apperror.Wrap(apperror.InvalidInput, detailInvalidEncoding, err))
				return
			}

			original := req.Body
			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
					original.Close()
				},
			}
			req.Header.Del("Content-Encoding")
			req.Header.Del("Content-Length")
			req.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")

		encoding := negotiateEncoding(req.Header.Get("Accept-Encoding"))
		if encoding == "" || req.Method == http.MethodHead {
			next.ServeHTTP(w, req)
			return
		}

		cw := &compressResponseWriter{
			ResponseWriter: w,
			encoding:       encoding,
			pool:           compressorPools[encoding],
		}
		defer cw.Close()

		next.ServeHTTP(cw, req)
	})
}

// negotiateEncoding picks the supported encoding with the highest q-value.
// "*" stands for every encoding not listed explicitly and q=0 excludes an
// encoding. An empty result means the response is sent as is.
func negotiateEncoding(acceptEncoding string) string {
	if acceptEncoding == "" {
		return ""
	}

	explicit := make(map[string]float64)
	wildcard := -1.0
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, q, ok := parseCoding(part)
		if !ok {
			continue
		}
		if name == "*" {
			wildcard = q
			continue
		}
		explicit[name] = q
	}

	var best string
	bestQ := 0.0
	for _, name := range supportedEncodings {
		q, listed := explicit[name]
		if !listed {
			if wildcard < 0 {
				continue
			}
			q = wildcard
		}
		if q > bestQ {
			best, bestQ = name, q
		}
	}
	return best
}

func parseCoding(part string) (name string, q float64, ok bool) {
	name, params, _ := strings.Cut(part, ";")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", 0, false
	}
	if name == "x-gzip" {
		name = encodingGzip
	}

	q = 1
	for _, param := range strings.Split(params, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || strings.ToLower(strings.TrimSpace(key)) != "q" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return "", 0, false
		}
		q = parsed
	}
	return name, q, true
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
		w.OnClose = nil
	}
	return nil
}

// compressResponseWriter encodes the body once the status is known. Responses
// that must not carry a body or are already encoded pass through unchanged.
type compressResponseWriter struct {
	http.ResponseWriter

	encoding    string
	pool        *sync.Pool
	enc         compressor
	wroteHeader bool
}

func (w *compressResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	if statusCode >= 100 && statusCode < 200 {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.wroteHeader = true

	h := w.Header()
	if h.Get("Content-Encoding") == "" && bodyAllowed(statusCode) {
		h.Set("Content-Encoding", w.encoding)
		h.Del("Content-Length")

		w.enc = w.pool.Get().(compressor)
		w.enc.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(data))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.enc == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.enc.Write(data)
}

// Flush emits everything encoded so far and flushes the underlying writer.
func (w *compressResponseWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.enc != nil {
		_ = w.enc.Flush()
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Close finishes the encoded stream and returns the encoder to its pool.
func (w *compressResponseWriter) Close() error {
	if w.enc == nil {
		return nil
	}
	err := w.enc.Close()
	w.pool.Put(w.enc)
	w.enc = nil
	return err
}

func (w *compressResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func bodyAllowed(statusCode int) bool {
	return statusCode != http.StatusNoContent && statusCode != http.StatusNotModified
}
