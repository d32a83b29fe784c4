package auth

import (
	"errors"
	"net/http"
)

// Authentication errors.
var (
	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken indicates the token failed signature, issuer or expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoSubject indicates a handler ran without an authenticated Subject in its context.
	ErrNoSubject = errors.New("no authenticated subject")
)

// MapHTTPStatus maps authentication errors to 401 Unauthorized.
// Anything else is reported as 500 Internal Server Error.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrNoSubject) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
