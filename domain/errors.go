package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidArgument indicates a caller-supplied id or shortcode was empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingToken indicates no access token was configured.
	ErrMissingToken = errors.New("access token not configured")
)

// TransportError reports that no response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-2xx response from the service.
type ServiceError struct {
	Op         string
	StatusCode int
	Message    string // the service's "error" field, when present
	Body       string
}

func (e *ServiceError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: service returned %d: %s", e.Op, e.StatusCode, detail)
}

// SchemaError reports a 2xx response whose body did not match the expected shape.
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status of a ServiceError anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsRateLimited reports whether err is a 429 from the service.
func IsRateLimited(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusTooManyRequests
}
