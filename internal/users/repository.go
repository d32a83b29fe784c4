package users

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

const table = "public.sys_user"

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	cost       int
}

// New returns a System backed by db. Passwords are hashed with
// bcrypt.DefaultCost and List pages are bounded by pagination.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "users"),
		pagination: pagination,
		cost:       bcrypt.DefaultCost,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, "ID").
		WhereSearch(page.Search, "Username", "Nickname", "Name")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	users, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanUser)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	if err := r.attachRoles(ctx, users); err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(users, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	hash, err := r.hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		q := `
			INSERT INTO public.sys_user
				(username, password, nickname, name, avatar, email, phone, dept_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING ` + returning

		u, err := repository.QueryOne(ctx, tx, q, []any{
			cmd.Username, hash, cmd.Nickname, cmd.Name, cmd.Avatar,
			cmd.Email, cmd.Phone, cmd.DeptID, cmd.Status,
		}, scanUser)
		if err != nil {
			return User{}, mapWriteError(err)
		}

		u.RoleIDs, err = assignRoles(ctx, tx, u.ID, cmd.RoleIDs)
		return u, err
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("user created", "id", u.ID, "username", u.Username)
	return &u, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateCommand) (*User, error) {
	var hash string
	if cmd.Password != "" {
		h, err := r.hash(cmd.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		q := `
			UPDATE public.sys_user
			SET username = $1, password = COALESCE(NULLIF($2, ''), password), nickname = $3,
				name = $4, avatar = $5, email = $6, phone = $7, dept_id = $8, status = $9,
				updated_at = NOW()
			WHERE id = $10
			RETURNING ` + returning

		u, err := repository.QueryOne(ctx, tx, q, []any{
			cmd.Username, hash, cmd.Nickname, cmd.Name, cmd.Avatar,
			cmd.Email, cmd.Phone, cmd.DeptID, cmd.Status, id,
		}, scanUser)
		if err != nil {
			return User{}, mapWriteError(err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM public.sys_user_role WHERE user_id = $1", id); err != nil {
			return User{}, fmt.Errorf("clear roles: %w", err)
		}

		u.RoleIDs, err = assignRoles(ctx, tx, u.ID, cmd.RoleIDs)
		return u, err
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("user updated", "id", u.ID, "username", u.Username, "password_changed", hash != "")
	return &u, nil
}

func (r *repo) Delete(ctx context.Context, ids []int64) error {
	n, err := repository.DeleteIn(ctx, r.db, table, ids)
	if err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	r.logger.Info("users deleted", "ids", ids, "count", n)
	return nil
}

func (r *repo) UpdateStatus(ctx context.Context, ids []int64, status bool) error {
	in, args := repository.InList(2, ids)
	q := fmt.Sprintf("UPDATE public.sys_user SET status = $1, updated_at = NOW() WHERE id IN (%s)", in)

	n, err := repository.ExecAffected(ctx, r.db, q, append([]any{status}, args...)...)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	r.logger.Info("user status updated", "ids", ids, "status", status)
	return nil
}

func (r *repo) Verify(ctx context.Context, username string) error {
	_, err := r.account(ctx, username)
	return err
}

func (r *repo) Info(ctx context.Context, username string) (*Info, error) {
	a, err := r.account(ctx, username)
	if err != nil {
		return nil, err
	}

	codes, err := repository.QueryMany(ctx, r.db, `
		SELECT r.code
		FROM public.sys_role r
		JOIN public.sys_user_role ur ON ur.role_id = r.id
		WHERE ur.user_id = $1 AND r.status
		ORDER BY r.code`, []any{a.info.ID}, scanString)
	if err != nil {
		return nil, fmt.Errorf("query role codes: %w", err)
	}

	info := a.info
	info.Roles = codes
	info.HomePath = HomePath
	return &info, nil
}

func (r *repo) PermissionCodes(ctx context.Context, username string) ([]string, error) {
	a, err := r.account(ctx, username)
	if err != nil {
		return nil, err
	}

	if a.info.IsSuperuser {
		codes, err := repository.QueryMany(ctx, r.db, `
			SELECT DISTINCT m.permission
			FROM public.sys_menu m
			WHERE m.status AND m.permission IS NOT NULL AND m.permission <> ''
			ORDER BY m.permission`, nil, scanString)
		if err != nil {
			return nil, fmt.Errorf("query permission codes: %w", err)
		}
		return codes, nil
	}

	codes, err := repository.QueryMany(ctx, r.db, `
		SELECT DISTINCT m.permission
		FROM public.sys_user_role ur
		JOIN public.sys_role r ON r.id = ur.role_id AND r.status
		JOIN public.sys_role_menu rm ON rm.role_id = r.id
		JOIN public.sys_menu m ON m.id = rm.menu_id AND m.status
		WHERE ur.user_id = $1 AND m.permission IS NOT NULL AND m.permission <> ''
		ORDER BY m.permission`, []any{a.info.ID}, scanString)
	if err != nil {
		return nil, fmt.Errorf("query permission codes: %w", err)
	}
	return codes, nil
}

// account loads username and rejects disabled users.
func (r *repo) account(ctx context.Context, username string) (account, error) {
	a, err := repository.QueryOne(ctx, r.db, `
		SELECT id, username, nickname, email, phone, avatar, is_superuser, status
		FROM public.sys_user
		WHERE username = $1`, []any{username}, scanAccount)
	if err != nil {
		return account{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	if !a.status {
		return account{}, fmt.Errorf("%w: %s", ErrDisabled, username)
	}
	return a, nil
}

func (r *repo) attachRoles(ctx context.Context, users []User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]int64, len(users))
	index := make(map[int64]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
		index[users[i].ID] = i
		users[i].RoleIDs = []int64{}
	}

	in, args := repository.InList(1, ids)
	q := fmt.Sprintf(
		"SELECT user_id, role_id FROM public.sys_user_role WHERE user_id IN (%s) ORDER BY user_id, role_id", in,
	)
	rows, err := repository.QueryMany(ctx, r.db, q, args, scanAssignment)
	if err != nil {
		return fmt.Errorf("query user roles: %w", err)
	}

	for _, a := range rows {
		if i, ok := index[a.userID]; ok {
			users[i].RoleIDs = append(users[i].RoleIDs, a.roleID)
		}
	}
	return nil
}

func (r *repo) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// assignRoles grants roleIDs to user and returns the assigned ids in ascending order.
func assignRoles(ctx context.Context, tx *sql.Tx, user int64, roleIDs []int64) ([]int64, error) {
	roleIDs = repository.DistinctIDs(roleIDs)
	if len(roleIDs) == 0 {
		return []int64{}, nil
	}

	in, args := repository.InList(2, roleIDs)
	q := fmt.Sprintf(`
		INSERT INTO public.sys_user_role (user_id, role_id)
		SELECT $1, r.id FROM public.sys_role r WHERE r.id IN (%s)`, in)

	n, err := repository.ExecAffected(ctx, tx, q, append([]any{user}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("assign roles: %w", err)
	}
	if n != int64(len(roleIDs)) {
		return nil, fmt.Errorf("%w: %d of %d roles exist", ErrUnknownRole, n, len(roleIDs))
	}

	slices.Sort(roleIDs)
	return roleIDs, nil
}

func mapWriteError(err error) error {
	if repository.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", ErrUnknownDept, err)
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
