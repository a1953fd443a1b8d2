package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Categories. Callers match them with errors.Is.
var (
	ErrValidation        = fmt.Errorf("validation error")
	ErrNotFound          = fmt.Errorf("not found")
	ErrInvalidTransition = fmt.Errorf("invalid transition")
	ErrPersistence       = fmt.Errorf("persistence error")
)

var (
	ErrMissingRecipient    = fmt.Errorf("%w: recipient is required", ErrValidation)
	ErrEmptySearchName     = fmt.Errorf("%w: saved search name is empty", ErrValidation)
	ErrDuplicateSearchName = fmt.Errorf("%w: saved search name already in use", ErrValidation)
	ErrDraftNotFound       = fmt.Errorf("%w: draft", ErrNotFound)
	ErrMessageNotFound     = fmt.Errorf("%w: message", ErrNotFound)
	ErrSavedSearchNotFound = fmt.Errorf("%w: saved search", ErrNotFound)
	ErrSessionNotFound     = fmt.Errorf("%w: compose session", ErrNotFound)
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrUnknownDriver       = fmt.Errorf("unknown storage driver")
)

// Persistence wraps a storage failure so it can be matched as ErrPersistence
// while keeping the driver error in the chain. Errors that already carry a
// category are returned untouched.
func Persistence(op string, err error) error {
	if err == nil || IsCategorized(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

func IsCategorized(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrPersistence)
}

// HTTPStatus maps an error category to the status code returned by the JSON API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrDuplicateSearchName):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
