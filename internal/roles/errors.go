package roles

import (
	"errors"
	"net/http"
)

// Domain errors for the roles system.
var (
	// ErrNotFound indicates the requested role does not exist.
	ErrNotFound = errors.New("role not found")

	// ErrDuplicate indicates a role with the same name or code already exists.
	ErrDuplicate = errors.New("role name or code already exists")

	// ErrUnknownMenu indicates a permission assignment references a menu that does not exist.
	ErrUnknownMenu = errors.New("permission references an unknown menu")
)

// MapHTTPStatus maps role domain errors to HTTP status codes.
// Returns 500 Internal Server Error for unrecognized errors.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownMenu):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
