package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Readers and writers are pooled per router.
func withGZip() func(http.Handler) http.Handler {
	writers := &sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	readers := &sync.Pool{New: func() any { return new(gzip.Reader) }}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasEncoding(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil && r.Body != http.NoBody {
				zr := readers.Get().(*gzip.Reader)
				if err := zr.Reset(r.Body); err != nil {
					readers.Put(zr)
					logger.FromRequest(r).Debug().Err(err).Msg("request body is not valid gzip")
					utils.WriteMessage(w, msgInvalidBody, http.StatusBadRequest)
					return
				}

				r.Body = &pooledReader{Reader: zr, release: func() {
					zr.Close()
					readers.Put(zr)
				}}
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			if r.Method == http.MethodHead || !hasEncoding(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w, writers: writers}
			defer gw.finish()

			next.ServeHTTP(gw, r)
		})
	}
}

// hasEncoding reports whether a Content-Encoding or Accept-Encoding value
// lists name with a non-zero quality.
func hasEncoding(header, name string) bool {
	for part := range strings.SplitSeq(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), name) {
			continue
		}

		q, found := strings.CutPrefix(strings.TrimSpace(params), "q=")
		if !found {
			return true
		}
		weight, err := strconv.ParseFloat(q, 64)
		return err == nil && weight > 0
	}
	return false
}

// pooledReader hands its gzip reader back to the pool on Close.
type pooledReader struct {
	io.Reader
	release func()
}

func (p *pooledReader) Close() error {
	if p.release != nil {
		p.release()
		p.release = nil
	}
	return nil
}

// gzipResponseWriter takes a writer from the pool only once the handler
// commits to a status that carries a body.
type gzipResponseWriter struct {
	http.ResponseWriter

	writers *sync.Pool
	zw      *gzip.Writer
	status  int
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	if statusCode < http.StatusOK {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.status = statusCode

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.zw = w.writers.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)

		h := w.Header()
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

// Flush pushes compressed bytes written so far to the client.
func (w *gzipResponseWriter) Flush() {
	if w.zw != nil {
		_ = w.zw.Flush()
	}
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

// finish writes the gzip footer. A handler that wrote nothing gets no body.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	_ = w.zw.Close()
	w.writers.Put(w.zw)
	w.zw = nil
}
