package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Nickname    *string    `json:"nickname,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	DeptID      *int64     `json:"dept_id,omitempty"`
	Status      bool       `json:"status"`
	IsSuperuser bool       `json:"is_superuser"`
	RoleIDs     []int64    `json:"role_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UserPayload is the body of user create and update.
// On update an empty Password leaves the stored password unchanged.
type UserPayload struct {
	Username string  `json:"username"`
	Password string  `json:"password,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Name     *string `json:"name,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	DeptID   *int64  `json:"dept_id,omitempty"`
	Status   bool    `json:"status"`
	RoleIDs  []int64 `json:"role_ids"`
}

// UserInfo describes the authenticated caller.
type UserInfo struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Nickname    *string  `json:"nickname,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Avatar      *string  `json:"avatar,omitempty"`
	IsSuperuser bool     `json:"is_superuser"`
	Roles       []string `json:"roles"`
	HomePath    string   `json:"homePath"`
}

// UserFilter narrows and pages the user list. Zero fields are not sent.
type UserFilter struct {
	Page     int
	PageSize int
	Search   string
	Username string
	Status   *bool
	DeptID   *int64
}

func (f UserFilter) Values() url.Values {
	v := url.Values{}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(f.PageSize))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Username != "" {
		v.Set("username", f.Username)
	}
	if f.Status != nil {
		v.Set("status", strconv.FormatBool(*f.Status))
	}
	if f.DeptID != nil {
		v.Set("dept_id", strconv.FormatInt(*f.DeptID, 10))
	}
	return v
}

// UserAPI wraps /user/info and the /system/user endpoints.
type UserAPI struct {
	r Requester
}

// Info issues GET /user/info.
func (a *UserAPI) Info(ctx context.Context) (*UserInfo, error) {
	var out UserInfo
	if err := a.r.Do(ctx, &Request{Method: http.MethodGet, Path: "/user/info"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List issues GET /system/user/list.
func (a *UserAPI) List(ctx context.Context, filter UserFilter) (*Page[User], error) {
	var out Page[User]
	err := a.r.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/system/user/list",
		Query:  query(filter.Values()),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create issues POST /system/user.
func (a *UserAPI) Create(ctx context.Context, payload UserPayload) (*User, error) {
	var out User
	if err := a.r.Do(ctx, &Request{Method: http.MethodPost, Path: "/system/user", Body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update issues PUT /system/user/{id}.
func (a *UserAPI) Update(ctx context.Context, id int64, payload UserPayload) (*User, error) {
	var out User
	err := a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   "/system/user/" + strconv.FormatInt(id, 10),
		Body:   payload,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete issues DELETE /system/user with {"ids": [...]}.
func (a *UserAPI) Delete(ctx context.Context, ids []int64) error {
	return a.r.Do(ctx, &Request{Method: http.MethodDelete, Path: "/system/user", Body: idList(ids)}, nil)
}

// UpdateStatus issues PUT /system/user/status with {"ids": [...], "status": bool}.
func (a *UserAPI) UpdateStatus(ctx context.Context, ids []int64, status bool) error {
	return a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   "/system/user/status",
		Body:   statusChange(ids, status),
	}, nil)
}
