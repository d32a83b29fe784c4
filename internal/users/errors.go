package users

import (
	"errors"
	"net/http"
)

// Domain errors for the users system.
var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate indicates a user with the same username already exists.
	ErrDuplicate = errors.New("username already exists")

	// ErrDisabled indicates the user exists but its status is disabled.
	ErrDisabled = errors.New("user is disabled")

	// ErrUnknownDept indicates the referenced dept does not exist.
	ErrUnknownDept = errors.New("dept does not exist")

	// ErrUnknownRole indicates one of the referenced roles does not exist.
	ErrUnknownRole = errors.New("role does not exist")
)

// MapHTTPStatus maps user domain errors to HTTP status codes.
// Returns 500 Internal Server Error for unrecognized errors.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrUnknownDept), errors.Is(err, ErrUnknownRole):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MapAccountStatus maps errors from Verify when authenticating a request.
// An unknown account is 401 Unauthorized rather than 404 Not Found.
func MapAccountStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusUnauthorized
	}
	return MapHTTPStatus(err)
}
