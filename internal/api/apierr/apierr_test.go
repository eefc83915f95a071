package apierr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteServerError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()

	Write(res, req, New(KindSelectEvents, errors.New("connection refused")))

	require.Equal(t, http.StatusInternalServerError, res.Code)
	require.Equal(t, "text/plain; charset=utf-8", res.Header().Get("Content-Type"))
	require.Equal(t, "Server Error: Cannot select events in database.", res.Body.String())
}

func TestWriteHidesCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	res := httptest.NewRecorder()

	Write(res, req, New(KindCreateEvent, errors.New("duplicate key value violates unique constraint")))

	require.NotContains(t, res.Body.String(), "duplicate key")
	require.Equal(t, "Server Error: Cannot create new event or channel.", res.Body.String())
}

func TestStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, New(KindJoinEvent, nil).Status())
	require.Equal(t, http.StatusInternalServerError, New(KindJoinedEvents, nil).Status())
	require.Equal(t, http.StatusNotFound, New(KindNotFound, nil).Status())
	require.Equal(t, http.StatusBadRequest, New(KindBadRequest, nil).Status())
	require.Equal(t, http.StatusUnauthorized, New(KindUnauthorized, nil).Status())
}

func TestOpErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := New(KindJoinEvent, cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "join_event: boom", err.Error())
}
