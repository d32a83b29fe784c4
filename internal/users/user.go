// Package users manages console accounts, their role assignments and the
// caller-facing views derived from them: /user/info and the permission
// codes behind /auth/codes.
package users

import "time"

// HomePath is where the console lands after sign-in.
const HomePath = "/dashboard"

// User is an account. The password hash never leaves the repository.
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

// Info describes the authenticated caller.
type Info struct {
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

type CreateCommand struct {
	Username string  `json:"username" validate:"required,max=50"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	DeptID   *int64  `json:"dept_id,omitempty" validate:"omitempty,gt=0"`
	Status   bool    `json:"status"`
	RoleIDs  []int64 `json:"role_ids" validate:"dive,gt=0"`
}

// UpdateCommand replaces a user. An empty Password keeps the stored one and
// RoleIDs replaces the role assignments.
type UpdateCommand struct {
	Username string  `json:"username" validate:"required,max=50"`
	Password string  `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	DeptID   *int64  `json:"dept_id,omitempty" validate:"omitempty,gt=0"`
	Status   bool    `json:"status"`
	RoleIDs  []int64 `json:"role_ids" validate:"dive,gt=0"`
}

type DeleteCommand struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type StatusCommand struct {
	IDs    []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
	Status bool    `json:"status"`
}
