package menus

import (
	"errors"
	"net/http"
)

// Domain errors for the menus system.
var (
	// ErrNotFound indicates the requested menu does not exist.
	ErrNotFound = errors.New("menu not found")

	// ErrDuplicate indicates a sibling menu with the same name already exists.
	ErrDuplicate = errors.New("menu name already exists under parent")

	// ErrInvalidParent indicates the parent menu does not exist or would create a cycle.
	ErrInvalidParent = errors.New("invalid parent menu")

	// ErrHasChildren indicates the menu cannot be deleted while it has child menus.
	ErrHasChildren = errors.New("menu has child menus")
)

// MapHTTPStatus maps menu domain errors to HTTP status codes.
// Returns 500 Internal Server Error for unrecognized errors.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrHasChildren):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidParent):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
