package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// The optional cause keeps the domain sentinel reachable through errors.Is.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap returns the domain cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Wrap returns a Failure that reports msg to the client and keeps cause for errors.Is.
func Wrap(code int, cause error, msg string) error {
	return &Failure{
		Code:    code,
		Message: msg,
		cause:   cause,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure for internal errors. Only msg reaches the
// client; err stays reachable through errors.Is.
func InternalError(err error, msg string) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: msg,
			cause:   err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(cause error, message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		cause:   cause,
	}
}

func Unavailable(msg string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
