package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrBadRequest       = errors.New("malformed request")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrDuplicate        = errors.New("already exists")
	ErrTimeout          = errors.New("operation timed out")
	ErrStoreUnavailable = errors.New("database unavailable")
	ErrInternal         = errors.New("internal server error")
)

// sentinelError carries a client-facing message while still unwrapping to one
// of the sentinels above, so errors.Is keeps working on the mapped error.
type sentinelError struct {
	msg      string
	sentinel error
}

func (e sentinelError) Error() string { return e.msg }
func (e sentinelError) Unwrap() error { return e.sentinel }

// FieldViolation is one failed field of a validation error.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ApiErr struct {
	StatusCode int
	err        error
	Violations []FieldViolation // populated for validation errors only
	Cause      error            // the underlying cause, never sent verbatim to clients
}

// implements error interface. this allows us to pass an instance of ApiErr as
// an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// GetFullError returns the error message including all causes, for logs.
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

// NewValidationError carries every failing field of a request in one response.
func NewValidationError(violations []FieldViolation) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Violations: violations,
	}
}

// NewDuplicateError reports a uniqueness collision. Duplicates respond with
// 400 alongside validation failures, not 409.
func NewDuplicateError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        sentinelError{msg: message, sentinel: ErrDuplicate},
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
