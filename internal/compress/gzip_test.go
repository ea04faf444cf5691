package compress

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestRequestUngzipper(t *testing.T) {

	var packed bytes.Buffer
	zw := gzip.NewWriter(&packed)
	_, err := zw.Write([]byte(`{"status": "preparing"}`))
	assert.NilError(t, err)
	assert.NilError(t, zw.Close())

	testCases := []struct {
		name         string
		body         io.Reader
		encoding     string
		expectedCode int
		expectedBody string
	}{
		{"plain", strings.NewReader("plain body"), "", http.StatusOK, "plain body"},
		{"gzip", bytes.NewReader(packed.Bytes()), "gzip", http.StatusOK, `{"status": "preparing"}`},
		{"broken gzip", strings.NewReader("not gzip"), "gzip", http.StatusBadRequest, "Could not decompress body\n"},
	}

	h := RequestUngzipper{}.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write(body)
	}))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/admin/orders", tc.body)
			if tc.encoding != "" {
				req.Header.Set("Content-Encoding", tc.encoding)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			got, err := io.ReadAll(res.Body)
			assert.NilError(t, err)
			assert.Equal(t, tc.expectedCode, res.StatusCode)
			assert.Equal(t, tc.expectedBody, string(got))
		})
	}
}
