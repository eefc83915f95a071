package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthzAlwaysOK(t *testing.T) {
	res := httptest.NewRecorder()
	Healthz().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}

func TestReadyzNoPool(t *testing.T) {
	res := httptest.NewRecorder()
	Readyz(nil).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, res.Code)
}

func TestHealthReportNoPool(t *testing.T) {
	checker := NewHealthChecker(nil, "1.2.3", "abc123")
	res := httptest.NewRecorder()
	checker.Health().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, res.Code)

	var report HealthReport
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &report))
	require.Equal(t, "unhealthy", report.Status)
	require.Equal(t, "1.2.3", report.Version)
	require.Equal(t, "fail", report.Checks["database"].Status)
	require.Equal(t, "fail", report.Checks["migrations"].Status)
}
