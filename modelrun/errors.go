package modelrun

import (
	internalerrors "github.com/modelrun-ai/modelrun-go/internal/errors"
	"github.com/modelrun-ai/modelrun-go/modelrun/predictions"
)

// APIError represents an error response from the Modelrun API.
type APIError = internalerrors.APIError

// ModelError reports that a prediction reached the failed status.
type ModelError = predictions.ModelError

// IsNotFound reports whether err indicates a resource was not found (404).
func IsNotFound(err error) bool {
	return internalerrors.IsNotFound(err)
}

// IsUnauthorized reports whether err indicates invalid or missing credentials (401).
func IsUnauthorized(err error) bool {
	return internalerrors.IsUnauthorized(err)
}

// IsPermissionDenied reports whether err indicates the caller lacks permission (403).
func IsPermissionDenied(err error) bool {
	return internalerrors.IsPermissionDenied(err)
}

// IsInvalidArgument reports whether err indicates an invalid argument (400).
func IsInvalidArgument(err error) bool {
	return internalerrors.IsInvalidArgument(err)
}

// IsRateLimited reports whether err indicates the request was throttled (429).
func IsRateLimited(err error) bool {
	return internalerrors.IsRateLimited(err)
}

// IsModelError reports whether err is a model execution failure.
func IsModelError(err error) bool {
	return predictions.IsModelError(err)
}
