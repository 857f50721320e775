package failure

import (
	"errors"
	"net/http"
)

// Failure is the error type that crosses the HTTP boundary: Code is the status, Message is shown to the caller
// and Details, when set, is rendered next to it (the open slots on a booking conflict, for instance).
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

var ForbiddenError = New(http.StatusForbidden, "You don't have the required permissions")

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// WithDetails returns a copy of the failure carrying details.
func (e *Failure) WithDetails(details any) *Failure {
	clone := *e
	clone.Details = details

	return &clone
}

// BadRequest turns a validation error into a 400. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func BadRequestWithDetails(msg string, details any) error {
	return New(http.StatusBadRequest, msg).WithDetails(details)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// Conflict is used for state transitions the current status does not allow.
func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// From returns the Failure in err's chain.
func From(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}

// GetCode returns the status of the Failure in err's chain, or 500 for anything else.
func GetCode(err error) int {
	if fail, ok := From(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func GetDetails(err error) any {
	if fail, ok := From(err); ok {
		return fail.Details
	}

	return nil
}
