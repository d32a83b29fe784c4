package depts

import "context"

// System manages departments.
type System interface {
	// List returns every dept matching filters ordered by sort, then id.
	List(ctx context.Context, filters Filters) ([]Dept, error)

	// Create inserts a dept. A non-zero parent must exist.
	Create(ctx context.Context, cmd Command) (*Dept, error)

	// Update replaces a dept. The new parent may not be the dept itself or one of its descendants.
	Update(ctx context.Context, id int64, cmd Command) (*Dept, error)

	// Delete removes ids in one transaction. Fails with ErrHasChildren when a dept
	// outside ids still points at one of them.
	Delete(ctx context.Context, ids []int64) error
}
