package predictions

import "errors"

// ModelError reports that a prediction reached the failed status. It
// carries the error message the model returned to the server.
type ModelError struct {
	Message string
}

// Error implements the error interface.
func (e *ModelError) Error() string {
	if e.Message == "" {
		return "modelrun: model execution failed"
	}
	return "modelrun: model execution failed: " + e.Message
}

// IsModelError reports whether err is a model execution failure.
func IsModelError(err error) bool {
	var modelErr *ModelError
	return errors.As(err, &modelErr)
}
