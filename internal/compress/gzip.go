package compress

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// RequestUngzipper transparently unpacks gzip encoded request bodies.
type RequestUngzipper struct{}

func (u RequestUngzipper) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		reader, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Could not decompress body", http.StatusBadRequest)
			return
		}
		defer reader.Close()

		r.Body = reader
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}
