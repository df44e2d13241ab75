package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface keeps the handler layer free of per-error
// switch statements.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// ValidationError indicates bad or missing caller input. Detected
	// before any network call is made.
	ValidationError struct {
		Message string
	}

	// ConfigurationError indicates a missing provider credential or other
	// process-configuration problem. Detected before any network call and
	// kept distinct from ValidationError so operators can tell a broken
	// deployment from a bad request.
	ConfigurationError struct {
		Message string
	}

	// NotFoundError indicates a specific, named "not found" condition,
	// e.g. a bill with no published text. Message names the stage that
	// came up empty.
	NotFoundError struct {
		Message string
	}
)

func (e *ValidationError) Error() string    { return e.Message }
func (e *ConfigurationError) Error() string { return e.Message }
func (e *NotFoundError) Error() string      { return e.Message }

func (e *ValidationError) StatusCode() int    { return http.StatusBadRequest }
func (e *ConfigurationError) StatusCode() int { return http.StatusInternalServerError }
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }

// ProviderError represents a non-2xx response from an upstream provider.
// The upstream status is preserved and mirrored back to the caller.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Body)
}

// StatusCode mirrors the upstream status so callers can distinguish a
// provider-side 404 from a provider-side 500.
func (e *ProviderError) StatusCode() int { return e.Status }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrConfiguration = errors.New("configuration error")
)

func (e *NotFoundError) Is(target error) bool      { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool    { return target == ErrValidation }
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
