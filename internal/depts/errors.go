package depts

import (
	"errors"
	"net/http"
)

// Domain errors for the depts system.
var (
	// ErrNotFound indicates the requested dept does not exist.
	ErrNotFound = errors.New("dept not found")

	// ErrDuplicate indicates a sibling dept with the same name already exists.
	ErrDuplicate = errors.New("dept name already exists under parent")

	// ErrInvalidParent indicates the parent dept does not exist or would create a cycle.
	ErrInvalidParent = errors.New("invalid parent dept")

	// ErrHasChildren indicates the dept cannot be deleted while it has child depts.
	ErrHasChildren = errors.New("dept has child depts")
)

// MapHTTPStatus maps dept domain errors to HTTP status codes.
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
