package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrForbidden is returned when a verified caller lacks the required role
	// or asks about another user's resources.
	ErrForbidden = errors.New("Forbidden")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidID is returned when a path or body id cannot be parsed.
	ErrInvalidID = errors.New("invalid id")
	// ErrEmptyCartIDs is returned when a settlement names no cart items.
	ErrEmptyCartIDs = errors.New("cartIds must not be empty")
	// ErrInvalidPrice is returned when a price cannot be parsed or is not positive.
	ErrInvalidPrice = errors.New("invalid price")
)

// ErrorResponse is the wire shape for all error bodies.
type ErrorResponse struct {
	Message string `json:"message"`
}

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

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrMenuItemNotFound), errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrEmptyCartIDs), errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
