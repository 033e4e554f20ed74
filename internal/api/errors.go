package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthenticated is returned before any network call when the session holds no token.
	ErrUnauthenticated = errors.New("api: no session token")
	// ErrSessionExpired is returned after the backend answered 401. The session has already been
	// cleared and the browser redirected to login.
	ErrSessionExpired = errors.New("api: session expired")
)

// Error is a non-2xx answer from the backend.
type Error struct {
	Status  int
	Message string
	// Fields keeps the mensaje/message/error strings of a JSON body, for callers that prefer
	// their own order.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Field returns the first non-empty body field among names.
func (e *Error) Field(names ...string) string {
	for _, n := range names {
		if v := e.Fields[n]; v != "" {
			return v
		}
	}
	return ""
}

// TransportError means the backend could not be reached at all.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusIs reports whether err is an *Error with the given status.
func StatusIs(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

const maxErrorBody = 64 << 10

// errorFrom builds an *Error from a non-2xx response and closes its body.
func errorFrom(resp *http.Response) *Error {
	defer resp.Body.Close()
	e := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return e
	}
	var body map[string]any
	if json.Unmarshal(data, &body) != nil {
		return e
	}

	e.Fields = make(map[string]string, 3)
	for _, name := range []string{"mensaje", "message", "error"} {
		if s, ok := body[name].(string); ok && strings.TrimSpace(s) != "" {
			e.Fields[name] = s
		}
	}
	if msg := e.Field("mensaje", "message", "error"); msg != "" {
		e.Message = msg
	}
	return e
}
