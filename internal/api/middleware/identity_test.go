package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherly/server/internal/domain/users"
	"github.com/stretchr/testify/require"
)

func TestIdentityAttachesCaller(t *testing.T) {
	var got *users.User
	handler := Identity()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/joined", nil)
	req.Header.Set(users.IdentityHeader, `{"id":7,"userName":"ana"}`)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.NotNil(t, got)
	require.Equal(t, int64(7), got.ID)
}

func TestIdentityRejectsMissingHeader(t *testing.T) {
	handler := Identity()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/joined", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	require.Equal(t, "Unauthorized.", res.Body.String())
}

func TestIdentityRejectsMalformedHeader(t *testing.T) {
	handler := Identity()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	req.Header.Set(users.IdentityHeader, `{"id":`)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestCallerFromContextNil(t *testing.T) {
	require.Nil(t, CallerFromContext(nil))
	require.Nil(t, CallerFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
