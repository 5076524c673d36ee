package ytscraper

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrConfiguration is wrapped by every error New returns.
var ErrConfiguration = errors.New("ytscraper: invalid configuration")

var (
	ErrMissingAPIKey  = fmt.Errorf("%w: API key is required", ErrConfiguration)
	ErrInvalidTimeout = fmt.Errorf("%w: timeout must not be negative", ErrConfiguration)
	ErrInvalidBaseURL = fmt.Errorf("%w: base URL must be absolute", ErrConfiguration)
)

// maxErrorBody bounds how much of a failed response is kept in TransportError.
const maxErrorBody = 512

// TransportError reports a failed request: network failure, timeout or a
// non-2xx status. StatusCode is 0 when no response was received.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if len(e.Body) > 0 {
			return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, string(e.Body))
		}
		return fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Temporary reports whether the failure is worth retrying.
func (e *TransportError) Temporary() bool {
	if e.StatusCode != 0 {
		return isRetryableStatus(e.StatusCode)
	}
	return isRetryable(e.Err)
}
