package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error is returned when the backend responds with a non-2xx status.
type Error struct {
	StatusCode int
	// Detail is the human readable message returned by the backend
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// IsNotFound returns true if the backend returned 404
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsError returns the backend error in the chain, if any.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// newError builds Error from the response body.
// A string detail is used verbatim, any other JSON detail is kept as text.
func newError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && len(eb.Detail) > 0 && !bytes.Equal(eb.Detail, []byte("null")) {
		var s string
		if json.Unmarshal(eb.Detail, &s) == nil {
			e.Detail = s
		} else {
			e.Detail = string(eb.Detail)
		}
	}
	if e.Detail == "" {
		e.Detail = http.StatusText(statusCode)
	}
	if e.Detail == "" {
		e.Detail = fmt.Sprintf("unexpected status %d", statusCode)
	}
	return e
}
