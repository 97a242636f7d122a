package api

import (
	"encoding/json"
	"fmt"
)

// ErrConfig indicates the client was constructed with unusable settings.
type ErrConfig struct {
	Field  string
	Reason string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("api config: %s %s", e.Field, e.Reason)
}

// ErrNetwork indicates the request never produced a usable HTTP response
// (DNS, connect, timeout, cancelled context).
type ErrNetwork struct {
	Op  string
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrProtocol indicates the service answered but outside the agreed shape:
// a non-2xx status or a body that does not decode into the expected form.
type ErrProtocol struct {
	Op         string
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (e *ErrProtocol) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *ErrProtocol) Unwrap() error { return e.Err }
