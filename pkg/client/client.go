// Package client is the typed façade over the console's resource API.
//
// Every method builds exactly one Request and hands it to the injected Requester.
// The façade performs no validation, retries, caching or error translation:
// whatever the Requester returns reaches the caller unchanged. Envelope
// unwrapping and response decoding belong to the Requester (see HTTPRequester).
package client

import (
	"context"
	"net/url"
)

// Request is one call against the resource API.
// Path is relative to the API base and never carries a query string.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Requester issues a Request and decodes the response payload into out.
// out is nil when the caller discards the payload.
type Requester interface {
	Do(ctx context.Context, req *Request, out any) error
}

// RequesterFunc adapts a function to Requester.
type RequesterFunc func(ctx context.Context, req *Request, out any) error

func (f RequesterFunc) Do(ctx context.Context, req *Request, out any) error {
	return f(ctx, req, out)
}

// Client groups the per-resource façades. All share one Requester.
type Client struct {
	Auth  *AuthAPI
	Depts *DeptAPI
	Menus *MenuAPI
	Roles *RoleAPI
	Users *UserAPI
}

func New(r Requester) *Client {
	return &Client{
		Auth:  &AuthAPI{r: r},
		Depts: &DeptAPI{r: r},
		Menus: &MenuAPI{r: r},
		Roles: &RoleAPI{r: r},
		Users: &UserAPI{r: r},
	}
}

// IDList is the body of batch deletes.
type IDList struct {
	IDs []int64 `json:"ids"`
}

// StatusChange is the body of batch status updates.
type StatusChange struct {
	IDs    []int64 `json:"ids"`
	Status bool    `json:"status"`
}

// Page is a paginated list.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func idList(ids []int64) IDList {
	if ids == nil {
		ids = []int64{}
	}
	return IDList{IDs: ids}
}

func statusChange(ids []int64, status bool) StatusChange {
	return StatusChange{IDs: idList(ids).IDs, Status: status}
}

// query returns nil when no parameter is set so zero-value filters send nothing.
func query(v url.Values) url.Values {
	if len(v) == 0 {
		return nil
	}
	return v
}
