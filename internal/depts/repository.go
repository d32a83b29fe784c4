package depts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

const table = "public.sys_dept"

var listOrder = []query.SortField{{Field: "Sort"}, {Field: "ID"}}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a depts System backed by db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "depts"),
	}
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Dept, error) {
	qb := query.NewBuilder(projection, "Sort")
	filters.Apply(qb).OrderByFields(listOrder)

	q, args := qb.Build()
	depts, err := repository.QueryMany(ctx, r.db, q, args, scanDept)
	if err != nil {
		return nil, fmt.Errorf("query depts: %w", err)
	}
	return depts, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Dept, error) {
	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Dept, error) {
		if cmd.ParentID != 0 {
			if err := checkParent(ctx, tx, 0, cmd.ParentID); err != nil {
				return Dept{}, err
			}
		}

		q := `
			INSERT INTO public.sys_dept (name, parent_id, leader, phone, email, sort, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + returning

		d, err := repository.QueryOne(ctx, tx, q, []any{
			cmd.Name, cmd.ParentID, cmd.Leader, cmd.Phone, cmd.Email, cmd.Sort, cmd.Status,
		}, scanDept)
		if err != nil {
			return Dept{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("dept created", "id", d.ID, "name", d.Name)
	return &d, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command) (*Dept, error) {
	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Dept, error) {
		if cmd.ParentID != 0 {
			if err := checkParent(ctx, tx, id, cmd.ParentID); err != nil {
				return Dept{}, err
			}
		}

		q := `
			UPDATE public.sys_dept
			SET name = $1, parent_id = $2, leader = $3, phone = $4, email = $5,
				sort = $6, status = $7, updated_at = NOW()
			WHERE id = $8
			RETURNING ` + returning

		d, err := repository.QueryOne(ctx, tx, q, []any{
			cmd.Name, cmd.ParentID, cmd.Leader, cmd.Phone, cmd.Email, cmd.Sort, cmd.Status, id,
		}, scanDept)
		if err != nil {
			return Dept{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("dept updated", "id", d.ID, "name", d.Name)
	return &d, nil
}

func (r *repo) Delete(ctx context.Context, ids []int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		orphans, err := repository.CountChildrenOutside(ctx, tx, table, ids)
		if err != nil {
			return struct{}{}, err
		}
		if orphans > 0 {
			return struct{}{}, ErrHasChildren
		}

		n, err := repository.DeleteIn(ctx, tx, table, ids)
		if err != nil {
			return struct{}{}, fmt.Errorf("delete depts: %w", err)
		}
		if n == 0 {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("depts deleted", "ids", ids)
	return nil
}

func checkParent(ctx context.Context, tx *sql.Tx, id, parent int64) error {
	err := repository.CheckParent(ctx, tx, table, id, parent)
	if errors.Is(err, repository.ErrParentMissing) || errors.Is(err, repository.ErrParentCycle) {
		return fmt.Errorf("%w: %d: %v", ErrInvalidParent, parent, err)
	}
	return err
}
