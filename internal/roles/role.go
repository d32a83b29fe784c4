// Package roles manages roles and their permission sets. A role's permission
// set is the list of menu ids granted to it through sys_role_menu.
package roles

import "time"

type Role struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Status    bool       `json:"status"`
	Remark    *string    `json:"remark,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Command struct {
	Name   string  `json:"name" validate:"required,max=50"`
	Code   string  `json:"code" validate:"required,max=50"`
	Status bool    `json:"status"`
	Remark *string `json:"remark,omitempty" validate:"omitempty,max=255"`
}

type DeleteCommand struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type StatusCommand struct {
	IDs    []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
	Status bool    `json:"status"`
}

// PermissionsCommand replaces a role's permission set. An empty list revokes everything.
type PermissionsCommand struct {
	Permissions []int64 `json:"permissions" validate:"dive,gt=0"`
}
