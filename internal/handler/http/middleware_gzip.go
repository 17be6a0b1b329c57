package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/YZcontent/yz-ad-club-backend/internal/app"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip accepts gzip-encoded request bodies and compresses responses for
// clients that advertise gzip in Accept-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasEncoding(r.Header.Get("Content-Encoding")) && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				writeErrorMessage(w, app.MsgInvalidContentFormat, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !hasEncoding(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w, zw: gzipWriters.Get().(*gzip.Writer)}
		gw.zw.Reset(w)
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

func hasEncoding(header string) bool {
	return strings.Contains(strings.ToLower(header), "gzip")
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Close() error {
	err := b.Reader.Close()
	gzipReaders.Put(b.Reader)
	if cerr := b.src.Close(); err == nil {
		err = cerr
	}
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends an implicit 200 first so Content-Encoding is never lost.
func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(data)
}

// finish flushes the stream and recycles the writer. A response that wrote
// nothing gets no gzip trailer.
func (w *gzipResponseWriter) finish() {
	if w.wroteHeader {
		_ = w.zw.Close()
	}
	w.zw.Reset(io.Discard)
	gzipWriters.Put(w.zw)
}
