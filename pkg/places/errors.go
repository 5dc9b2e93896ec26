package places

import (
	"errors"
	"fmt"
	"net/http"
)

// Package-level error variable definitions
var (
	// Session errors
	ErrMissingConsumerKey = errors.New("places: consumer key is required")
	ErrMissingKeyStore    = errors.New("places: keystore path is required")
	ErrKeyStore           = errors.New("places: unable to load signing key from keystore")
	ErrUnsupportedKey     = errors.New("places: keystore does not hold an RSA private key")

	// Request errors
	ErrInvalidQuery = errors.New("places: invalid place query")
	ErrSigning      = errors.New("places: request signing failed")
)

// ProviderError is any failure reported by, or while reaching, the merchant-location provider.
type ProviderError struct {
	Operation  string
	StatusCode int    // provider HTTP status, 0 when no response arrived
	Body       []byte // raw provider error body, relayed verbatim
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("places %s: provider status %d: %v", e.Operation, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("places %s: %v", e.Operation, e.Err)
	default:
		return fmt.Sprintf("places %s: provider status %d: %s", e.Operation, e.StatusCode, truncate(e.Body, 256))
	}
}

// Unwrap supports error wrapping
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// HTTPStatus is the status the gateway relays: the provider's own 4xx/5xx, otherwise 500.
func (e *ProviderError) HTTPStatus() int {
	if e.StatusCode >= http.StatusBadRequest && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// NewProviderError creates a provider error for a failed operation
func NewProviderError(operation string, statusCode int, body []byte, err error) *ProviderError {
	return &ProviderError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// AsProviderError extracts a *ProviderError from err
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
