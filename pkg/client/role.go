package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Role struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Status    bool       `json:"status"`
	Remark    *string    `json:"remark,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RolePayload is the body of role create and update.
type RolePayload struct {
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	Status bool    `json:"status"`
	Remark *string `json:"remark,omitempty"`
}

// RoleFilter narrows the role list. Zero fields are not sent.
type RoleFilter struct {
	Name   string
	Code   string
	Status *bool
}

func (f RoleFilter) Values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Code != "" {
		v.Set("code", f.Code)
	}
	if f.Status != nil {
		v.Set("status", strconv.FormatBool(*f.Status))
	}
	return v
}

// PermissionSet is the body of a role permission replacement.
type PermissionSet struct {
	Permissions []int64 `json:"permissions"`
}

// RoleAPI wraps the /system/role endpoints.
type RoleAPI struct {
	r Requester
}

// List issues GET /system/role/list.
func (a *RoleAPI) List(ctx context.Context, filter RoleFilter) ([]Role, error) {
	var out []Role
	err := a.r.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/system/role/list",
		Query:  query(filter.Values()),
	}, &out)
	return out, err
}

// Create issues POST /system/role.
func (a *RoleAPI) Create(ctx context.Context, payload RolePayload) (*Role, error) {
	var out Role
	if err := a.r.Do(ctx, &Request{Method: http.MethodPost, Path: "/system/role", Body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update issues PUT /system/role/{id}.
func (a *RoleAPI) Update(ctx context.Context, id int64, payload RolePayload) (*Role, error) {
	var out Role
	err := a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   rolePath(id),
		Body:   payload,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete issues DELETE /system/role with {"ids": [...]}.
func (a *RoleAPI) Delete(ctx context.Context, ids []int64) error {
	return a.r.Do(ctx, &Request{Method: http.MethodDelete, Path: "/system/role", Body: idList(ids)}, nil)
}

// UpdateStatus issues PUT /system/role/status with {"ids": [...], "status": bool}.
func (a *RoleAPI) UpdateStatus(ctx context.Context, ids []int64, status bool) error {
	return a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   "/system/role/status",
		Body:   statusChange(ids, status),
	}, nil)
}

// Permissions issues GET /system/role/{roleID}/permissions and returns the granted menu ids.
func (a *RoleAPI) Permissions(ctx context.Context, roleID int64) ([]int64, error) {
	var out []int64
	err := a.r.Do(ctx, &Request{Method: http.MethodGet, Path: rolePath(roleID) + "/permissions"}, &out)
	return out, err
}

// UpdatePermissions issues PUT /system/role/{roleID}/permissions.
// The server replaces the role's set with permissions; it does not merge.
func (a *RoleAPI) UpdatePermissions(ctx context.Context, roleID int64, permissions []int64) error {
	if permissions == nil {
		permissions = []int64{}
	}
	return a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   rolePath(roleID) + "/permissions",
		Body:   PermissionSet{Permissions: permissions},
	}, nil)
}

func rolePath(id int64) string {
	return "/system/role/" + strconv.FormatInt(id, 10)
}
