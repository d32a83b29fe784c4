package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Dept is an organizational unit. Roots have ParentID 0.
type Dept struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	ParentID  int64      `json:"parent_id"`
	Leader    *string    `json:"leader,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Sort      int        `json:"sort"`
	Status    bool       `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DeptPayload is the body of dept create and update.
type DeptPayload struct {
	Name     string  `json:"name"`
	ParentID int64   `json:"parent_id"`
	Leader   *string `json:"leader,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Sort     int     `json:"sort"`
	Status   bool    `json:"status"`
}

// DeptFilter narrows the dept list. Zero fields are not sent.
type DeptFilter struct {
	Name   string
	Status *bool
}

func (f DeptFilter) Values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Status != nil {
		v.Set("status", strconv.FormatBool(*f.Status))
	}
	return v
}

// DeptAPI wraps the /system/dept endpoints.
type DeptAPI struct {
	r Requester
}

// List issues GET /system/dept/list.
func (a *DeptAPI) List(ctx context.Context, filter DeptFilter) ([]Dept, error) {
	var out []Dept
	err := a.r.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/system/dept/list",
		Query:  query(filter.Values()),
	}, &out)
	return out, err
}

// Create issues POST /system/dept.
func (a *DeptAPI) Create(ctx context.Context, payload DeptPayload) (*Dept, error) {
	var out Dept
	if err := a.r.Do(ctx, &Request{Method: http.MethodPost, Path: "/system/dept", Body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update issues PUT /system/dept/{id}.
func (a *DeptAPI) Update(ctx context.Context, id int64, payload DeptPayload) (*Dept, error) {
	var out Dept
	err := a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   "/system/dept/" + strconv.FormatInt(id, 10),
		Body:   payload,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete issues DELETE /system/dept with {"ids": [...]}.
func (a *DeptAPI) Delete(ctx context.Context, ids []int64) error {
	return a.r.Do(ctx, &Request{Method: http.MethodDelete, Path: "/system/dept", Body: idList(ids)}, nil)
}
