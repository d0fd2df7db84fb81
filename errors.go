package placeholder

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/go/errors"
)

// Error codes specific to the placeholder client. The remaining codes used by
// the package (CodeInvalidInput, CodeNetwork, CodeInternal) come from the
// errors library.
const (
	// ErrCodeRequestFailed indicates the API answered with a non-success status.
	// No distinction is made between client and server errors.
	ErrCodeRequestFailed errors.ErrorCode = "REQUEST_FAILED"

	// ErrCodeFetchFailed indicates a read could not be completed.
	// Previously cached data is left untouched.
	ErrCodeFetchFailed errors.ErrorCode = "FETCH_FAILED"

	// ErrCodeMutationFailed indicates a create, update or delete failed.
	// Any optimistic edit has already been rolled back.
	ErrCodeMutationFailed errors.ErrorCode = "MUTATION_FAILED"
)

// IsSuccess reports whether statusCode is a 2xx status.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// NewRequestFailedError creates the error returned by gateways for a
// non-success response. The failure is classified retryable since its cause
// is unknown to the client.
func NewRequestFailedError(method, path string, statusCode int) error {
	err := errors.New(
		ErrCodeRequestFailed,
		fmt.Sprintf("%s %s returned %d %s", method, path, statusCode, http.StatusText(statusCode)),
	)
	err = errors.WithClassification(err, errors.ClassificationRetryable)
	err = errors.WithContextMap(err, map[string]interface{}{
		"method":      method,
		"path":        path,
		"status_code": statusCode,
	})
	return err
}

// WrapTransportError wraps an error raised before any response was received.
func WrapTransportError(err error, method, path string) error {
	if err == nil {
		return nil
	}
	wrapped := errors.Wrapf(err, errors.CodeNetwork, "%s %s failed", method, path)
	wrapped = errors.WithContext(wrapped, "method", method)
	return errors.WithContext(wrapped, "path", path)
}

// WrapDecodeError wraps a failure to decode a response body.
func WrapDecodeError(err error, path string) error {
	if err == nil {
		return nil
	}
	return errors.WithContext(
		errors.Wrap(err, errors.CodeInternal, "failed to decode response"),
		"path", path,
	)
}

// wrapFetchError marks a read failure. Classification of the cause is kept.
func wrapFetchError(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, ErrCodeFetchFailed, message)
}

// wrapMutationError marks a write failure. Classification of the cause is kept.
func wrapMutationError(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, ErrCodeMutationFailed, message)
}

// IsFetchFailed reports whether err is a read failure.
func IsFetchFailed(err error) bool {
	return errors.GetCode(err) == ErrCodeFetchFailed
}

// IsMutationFailed reports whether err is a write failure.
func IsMutationFailed(err error) bool {
	return errors.GetCode(err) == ErrCodeMutationFailed
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "reason", reason)
	return err
}
