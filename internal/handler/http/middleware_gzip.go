package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGzipBody transparently inflates request bodies sent with
// "Content-Encoding: gzip". Exports compress well and are uploaded as is.
func withGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") || req.Body == nil {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			http.Error(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		req.Body = &pooledGzipBody{Reader: gzipReader, source: req.Body}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

// pooledGzipBody returns its reader to the pool when closed.
type pooledGzipBody struct {
	*gzip.Reader
	source io.ReadCloser
	closed bool
}

func (b *pooledGzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.source.Close()
}
