package repository

import (
	"context"
	"errors"
	"fmt"
)

// Parent check failures returned by CheckParent.
var (
	ErrParentMissing = errors.New("parent does not exist")
	ErrParentCycle   = errors.New("parent is the record or one of its descendants")
)

// CheckParent verifies that parent exists in table and, for a non-zero id,
// that parent is not id or one of its descendants. table must have id and
// parent_id columns and is interpolated as given.
func CheckParent(ctx context.Context, q Querier, table string, id, parent int64) error {
	var exists bool
	if err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table), parent,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check parent: %w", err)
	}
	if !exists {
		return ErrParentMissing
	}
	if id == 0 {
		return nil
	}

	var cycle bool
	sql := fmt.Sprintf(`
		WITH RECURSIVE subtree AS (
			SELECT id FROM %[1]s WHERE id = $1
			UNION ALL
			SELECT t.id FROM %[1]s t JOIN subtree s ON t.parent_id = s.id
		)
		SELECT EXISTS (SELECT 1 FROM subtree WHERE id = $2)`, table)
	if err := q.QueryRowContext(ctx, sql, id, parent).Scan(&cycle); err != nil {
		return fmt.Errorf("check parent cycle: %w", err)
	}
	if cycle {
		return ErrParentCycle
	}
	return nil
}

// CountChildrenOutside counts rows of table whose parent is in ids but which
// are not themselves in ids.
func CountChildrenOutside(ctx context.Context, q Querier, table string, ids []int64) (int, error) {
	in, args := InList(1, ids)
	var n int
	err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE parent_id IN (%s) AND id NOT IN (%s)", table, in, in),
		args...,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// DeleteIn deletes the rows of table whose id is in ids and returns the number removed.
func DeleteIn(ctx context.Context, e Executor, table string, ids []int64) (int64, error) {
	in, args := InList(1, ids)
	return ExecAffected(ctx, e, fmt.Sprintf("DELETE FROM %s WHERE id IN (%s)", table, in), args...)
}
