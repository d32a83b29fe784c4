package roles

import "context"

// System manages roles and role permission sets.
type System interface {
	List(ctx context.Context, filters Filters) ([]Role, error)
	Create(ctx context.Context, cmd Command) (*Role, error)
	Update(ctx context.Context, id int64, cmd Command) (*Role, error)

	// Delete removes ids. User assignments and menu grants cascade.
	Delete(ctx context.Context, ids []int64) error

	// UpdateStatus enables or disables every role in ids.
	UpdateStatus(ctx context.Context, ids []int64, status bool) error

	// Permissions returns the menu ids granted to role id in ascending order.
	Permissions(ctx context.Context, id int64) ([]int64, error)

	// SetPermissions replaces the permission set of role id with menuIDs and
	// returns the stored set. Unknown menu ids fail the whole replacement.
	SetPermissions(ctx context.Context, id int64, menuIDs []int64) ([]int64, error)
}
