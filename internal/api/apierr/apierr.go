// Package apierr is the HTTP error boundary. Handlers convert any failure
// into an OpError carrying a fixed client-safe message; the wrapped cause is
// logged server-side and never reaches the response body.
package apierr

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Kind names the operation that failed. Clients can tell which operation
// broke, but not why.
type Kind string

const (
	KindSelectEvents Kind = "select_events"
	KindCreateEvent  Kind = "create_event"
	KindJoinEvent    Kind = "join_event"
	KindJoinedEvents Kind = "joined_events"
	KindNotFound     Kind = "not_found"
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
)

var messages = map[Kind]string{
	KindSelectEvents: "Server Error: Cannot select events in database.",
	KindCreateEvent:  "Server Error: Cannot create new event or channel.",
	KindJoinEvent:    "Server Error: Cannot insert into UsersJoinEvents.",
	KindJoinedEvents: "Server Error: Cannot select joined events.",
	KindNotFound:     "Not Found.",
	KindBadRequest:   "Bad Request.",
	KindUnauthorized: "Unauthorized.",
}

var statuses = map[Kind]int{
	KindNotFound:     http.StatusNotFound,
	KindBadRequest:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
}

// OpError pairs a fixed client message with the internal cause.
type OpError struct {
	Kind  Kind
	Cause error
}

func (e *OpError) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Cause.Error()
}

func (e *OpError) Unwrap() error { return e.Cause }

// Message is the client-safe text for the error kind.
func (e *OpError) Message() string {
	if msg, ok := messages[e.Kind]; ok {
		return msg
	}
	return "Server Error."
}

// Status is the response code for the error kind; anything not explicitly
// mapped is a 500.
func (e *OpError) Status() int {
	if status, ok := statuses[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func New(kind Kind, cause error) *OpError {
	return &OpError{Kind: kind, Cause: cause}
}

// Write emits the error as a plain-text response and logs the cause with the
// request-scoped logger. Server errors log at error level, client errors at
// warn.
func Write(w http.ResponseWriter, r *http.Request, opErr *OpError) {
	status := opErr.Status()

	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Err(opErr.Cause).
		Int("status", status).
		Str("kind", string(opErr.Kind)).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg("request failed")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(opErr.Message()))
}
