package roles

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

const table = "public.sys_role"

var listOrder = []query.SortField{{Field: "ID"}}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a roles System backed by db. Permission assignments are
// replaced inside a transaction.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "roles"),
	}
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Role, error) {
	qb := query.NewBuilder(projection, "ID")
	filters.Apply(qb).OrderByFields(listOrder)

	q, args := qb.Build()
	roles, err := repository.QueryMany(ctx, r.db, q, args, scanRole)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	return roles, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Role, error) {
	q := `
		INSERT INTO public.sys_role (name, code, status, remark)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + returning

	role, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Name, cmd.Code, cmd.Status, cmd.Remark}, scanRole)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("role created", "id", role.ID, "code", role.Code)
	return &role, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command) (*Role, error) {
	q := `
		UPDATE public.sys_role
		SET name = $1, code = $2, status = $3, remark = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + returning

	role, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Name, cmd.Code, cmd.Status, cmd.Remark, id}, scanRole)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("role updated", "id", role.ID, "code", role.Code)
	return &role, nil
}

func (r *repo) Delete(ctx context.Context, ids []int64) error {
	n, err := repository.DeleteIn(ctx, r.db, table, ids)
	if err != nil {
		return fmt.Errorf("delete roles: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	r.logger.Info("roles deleted", "ids", ids, "count", n)
	return nil
}

func (r *repo) UpdateStatus(ctx context.Context, ids []int64, status bool) error {
	in, args := repository.InList(2, ids)
	q := fmt.Sprintf("UPDATE public.sys_role SET status = $1, updated_at = NOW() WHERE id IN (%s)", in)

	n, err := repository.ExecAffected(ctx, r.db, q, append([]any{status}, args...)...)
	if err != nil {
		return fmt.Errorf("update role status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	r.logger.Info("role status updated", "ids", ids, "status", status)
	return nil
}

func (r *repo) Permissions(ctx context.Context, id int64) ([]int64, error) {
	if err := r.exists(ctx, r.db, id); err != nil {
		return nil, err
	}
	return r.permissions(ctx, r.db, id)
}

func (r *repo) SetPermissions(ctx context.Context, id int64, menuIDs []int64) ([]int64, error) {
	menuIDs = repository.DistinctIDs(menuIDs)

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]int64, error) {
		if err := r.exists(ctx, tx, id); err != nil {
			return nil, err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM public.sys_role_menu WHERE role_id = $1", id); err != nil {
			return nil, fmt.Errorf("clear permissions: %w", err)
		}

		if len(menuIDs) > 0 {
			in, args := repository.InList(2, menuIDs)
			q := fmt.Sprintf(`
				INSERT INTO public.sys_role_menu (role_id, menu_id)
				SELECT $1, m.id FROM public.sys_menu m WHERE m.id IN (%s)`, in)

			n, err := repository.ExecAffected(ctx, tx, q, append([]any{id}, args...)...)
			if err != nil {
				return nil, fmt.Errorf("grant permissions: %w", err)
			}
			if n != int64(len(menuIDs)) {
				return nil, fmt.Errorf("%w: %d of %d menus exist", ErrUnknownMenu, n, len(menuIDs))
			}
		}

		granted := slices.Clone(menuIDs)
		slices.Sort(granted)
		return granted, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("role permissions replaced", "id", id, "count", len(result))
	return result, nil
}

func (r *repo) exists(ctx context.Context, q repository.Querier, id int64) error {
	_, err := repository.QueryOne(ctx, q, "SELECT id FROM public.sys_role WHERE id = $1", []any{id}, scanID)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (r *repo) permissions(ctx context.Context, q repository.Querier, id int64) ([]int64, error) {
	ids, err := repository.QueryMany(ctx, q,
		"SELECT menu_id FROM public.sys_role_menu WHERE role_id = $1 ORDER BY menu_id",
		[]any{id}, scanID)
	if err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}
	return ids, nil
}
