package menus

import "context"

// System manages menus.
type System interface {
	// Tree returns the enabled menus nested by parent and ordered by sort.
	Tree(ctx context.Context) ([]Node, error)

	// List returns the flat list of menus matching filters.
	List(ctx context.Context, filters Filters) ([]Menu, error)

	Create(ctx context.Context, cmd Command) (*Menu, error)

	// Update replaces a menu. The new parent may not be the menu itself or one of its descendants.
	Update(ctx context.Context, id int64, cmd Command) (*Menu, error)

	// Delete removes ids and their role grants. Fails with ErrHasChildren when a
	// menu outside ids still points at one of them.
	Delete(ctx context.Context, ids []int64) error
}
