package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/crypto"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
)

// statusFromError maps a domain error to its HTTP status. Anything not
// recognized is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, errInvalidBody),
		errors.Is(err, crypto.ErrPasswordTooLong),
		isValidationError(err):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsInvalid),
		errors.Is(err, ErrEmptyAuthorizationHeader),
		errors.Is(err, ErrInvalidAuthorizationHeader),
		errors.Is(err, ErrEmptyToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrEntryNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrIdentityAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func isValidationError(err error) bool {
	return errors.Is(err, validators.ErrEmptyTitle) ||
		errors.Is(err, validators.ErrInvalidAmount) ||
		errors.Is(err, validators.ErrInvalidDateRange)
}

// validationMessage returns the client message for a 400 on the entry routes.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return "Title is required."
	case errors.Is(err, validators.ErrInvalidAmount):
		return "Amounts must be non-negative numbers."
	case errors.Is(err, validators.ErrInvalidDateRange):
		return "End date must not precede start date."
	}
	return msgInvalidBody
}
