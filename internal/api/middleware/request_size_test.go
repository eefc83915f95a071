package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestSizeRejectsOversizedBody(t *testing.T) {
	var readErr error
	handler := RequestSize(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader("this body is longer than eight bytes"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Error(t, readErr)
}

func TestRequestSizeAllowsSmallBody(t *testing.T) {
	var body []byte
	handler := PublicRequestSize()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"id":1}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, `{"id":1}`, string(body))
}
