// Package depts manages the department tree. Roots have parent_id 0 and
// users reference a department through sys_user.dept_id.
package depts

import "time"

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

// Command is the body of dept create and update.
type Command struct {
	Name     string  `json:"name" validate:"required,max=50"`
	ParentID int64   `json:"parent_id" validate:"gte=0"`
	Leader   *string `json:"leader,omitempty" validate:"omitempty,max=20"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Sort     int     `json:"sort"`
	Status   bool    `json:"status"`
}

type DeleteCommand struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}
