// ABOUTME: API error type for Modelrun API failures.
// ABOUTME: Provides structured error information and helper functions.

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the Modelrun API.
// Detail is the server-supplied message; Body preserves the raw
// response body for diagnostics.
type APIError struct {
	StatusCode int
	Detail     string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("modelrun: %s (status %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("modelrun: request failed (status %d)", e.StatusCode)
}

// IsNotFound reports whether err indicates a resource was not found (404).
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports whether err indicates invalid or missing credentials (401).
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsPermissionDenied reports whether err indicates the caller lacks permission (403).
func IsPermissionDenied(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsInvalidArgument reports whether err indicates an invalid argument (400).
func IsInvalidArgument(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest
	}
	return false
}

// IsRateLimited reports whether err indicates the request was throttled (429).
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
