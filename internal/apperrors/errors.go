package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the state a write was based on changed before it could be applied.
// Callers should reload and retry the whole operation.
var ErrConflict = errors.New("conflicting modification")

// ErrForbidden indicates that the user is authenticated but lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the request is missing valid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStorage indicates a failure of the underlying persistence layer.
var ErrStorage = errors.New("storage failure")

// ErrInternal indicates an unexpected internal error.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message on top of a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is / errors.As see through AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports that the named thing does not exist, e.g. NewNotFoundError("target shareholder").
func NewNotFoundError(what string) error {
	return NewAppError(http.StatusNotFound, what+" not found", ErrNotFound)
}

// NewValidationError reports malformed input.
func NewValidationError(message string) error {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewValidationErrorWithCause reports malformed input detected by a lower layer.
// Both ErrValidation and cause stay reachable through errors.Is.
func NewValidationErrorWithCause(message string, cause error) error {
	return NewAppError(http.StatusBadRequest, message, errors.Join(ErrValidation, cause))
}

// NewDuplicateError reports that a resource with the same identity already exists.
func NewDuplicateError(message string) error {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewConflictError reports a lost optimistic-concurrency race.
func NewConflictError(message string) error {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// NewStorageError wraps a persistence failure. Both ErrStorage and the cause stay reachable through errors.Is.
func NewStorageError(message string, cause error) error {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrStorage, cause))
}

// Message returns the client-facing message of err: the AppError message when there is one.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code handlers should respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
