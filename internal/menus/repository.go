package menus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

const table = "public.sys_menu"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a menus System backed by db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "menus"),
	}
}

func (r *repo) Tree(ctx context.Context) ([]Node, error) {
	enabled := true
	q, args := query.NewBuilder(projection, "Sort").
		WhereEquals("Status", &enabled).
		OrderByFields(listOrder).
		Build()

	menus, err := repository.QueryMany(ctx, r.db, q, args, scanMenu)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	return BuildTree(menus), nil
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Menu, error) {
	qb := query.NewBuilder(projection, "Sort")
	filters.Apply(qb).OrderByFields(listOrder)

	q, args := qb.Build()
	menus, err := repository.QueryMany(ctx, r.db, q, args, scanMenu)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	return menus, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Menu, error) {
	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Menu, error) {
		if cmd.ParentID != 0 {
			if err := checkParent(ctx, tx, 0, cmd.ParentID); err != nil {
				return Menu{}, err
			}
		}

		q := `
			INSERT INTO public.sys_menu
				(name, path, component, redirect, parent_id, type, permission, icon, sort, status, is_visible)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING ` + returning

		m, err := repository.QueryOne(ctx, tx, q, commandArgs(cmd), scanMenu)
		if err != nil {
			return Menu{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("menu created", "id", m.ID, "name", m.Name)
	return &m, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command) (*Menu, error) {
	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Menu, error) {
		if cmd.ParentID != 0 {
			if err := checkParent(ctx, tx, id, cmd.ParentID); err != nil {
				return Menu{}, err
			}
		}

		q := `
			UPDATE public.sys_menu
			SET name = $1, path = $2, component = $3, redirect = $4, parent_id = $5, type = $6,
				permission = $7, icon = $8, sort = $9, status = $10, is_visible = $11,
				updated_at = NOW()
			WHERE id = $12
			RETURNING ` + returning

		m, err := repository.QueryOne(ctx, tx, q, append(commandArgs(cmd), id), scanMenu)
		if err != nil {
			return Menu{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("menu updated", "id", m.ID, "name", m.Name)
	return &m, nil
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
			return struct{}{}, fmt.Errorf("delete menus: %w", err)
		}
		if n == 0 {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("menus deleted", "ids", ids)
	return nil
}

func commandArgs(cmd Command) []any {
	return []any{
		cmd.Name, cmd.Path, cmd.Component, cmd.Redirect, cmd.ParentID, int(cmd.Type),
		cmd.Permission, cmd.Icon, cmd.Sort, cmd.Status, cmd.IsVisible,
	}
}

func checkParent(ctx context.Context, tx *sql.Tx, id, parent int64) error {
	err := repository.CheckParent(ctx, tx, table, id, parent)
	if errors.Is(err, repository.ErrParentMissing) || errors.Is(err, repository.ErrParentCycle) {
		return fmt.Errorf("%w: %d: %v", ErrInvalidParent, parent, err)
	}
	return err
}
