package client

import (
	"context"
	"net/http"
)

// AuthAPI wraps the permission code endpoint.
type AuthAPI struct {
	r Requester
}

// Codes issues GET /auth/codes and returns the caller's permission tokens.
func (a *AuthAPI) Codes(ctx context.Context) ([]string, error) {
	var out []string
	err := a.r.Do(ctx, &Request{Method: http.MethodGet, Path: "/auth/codes"}, &out)
	return out, err
}
