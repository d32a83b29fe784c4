package users

import (
	"context"

	"github.com/JaimeStill/admin-console/pkg/pagination"
)

// System manages users and answers questions about the authenticated caller.
type System interface {
	// List returns one page of users. Search matches username, nickname and name.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[User], error)

	// Create stores a user with a bcrypt-hashed password and assigns RoleIDs.
	Create(ctx context.Context, cmd CreateCommand) (*User, error)

	// Update replaces a user and its role assignments.
	Update(ctx context.Context, id int64, cmd UpdateCommand) (*User, error)

	Delete(ctx context.Context, ids []int64) error
	UpdateStatus(ctx context.Context, ids []int64, status bool) error

	// Verify reports ErrNotFound for an unknown username and ErrDisabled for a
	// disabled one.
	Verify(ctx context.Context, username string) error

	// Info describes the enabled user named username.
	Info(ctx context.Context, username string) (*Info, error)

	// PermissionCodes returns the distinct permission tokens of the enabled menus
	// granted to username through enabled roles. Superusers hold every token.
	PermissionCodes(ctx context.Context, username string) ([]string, error)
}
