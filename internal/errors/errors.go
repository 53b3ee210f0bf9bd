package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required field is absent or blank after trimming.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidAmount is returned when an amount is non-numeric or not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTitleTooLong is returned when a title exceeds the 50 character bound.
	ErrTitleTooLong = errors.New("title must be at most 50 characters")
	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrUserExists is returned when registering an already-taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTransactionNotFound is returned when no record matches the id for the caller.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a 500 so store failures are never reported verbatim to callers.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, "All fields are required")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, "Invalid amount")
	case errors.Is(err, ErrTitleTooLong):
		return NewHTTPError(http.StatusBadRequest, "Title must be at most 50 characters")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, "Invalid date")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, "Transaction not found")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
