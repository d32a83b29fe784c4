package users_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JaimeStill/admin-console/internal/users"
	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

var (
	userColumns = []string{
		"id", "username", "nickname", "name", "avatar", "email",
		"phone", "dept_id", "status", "is_superuser", "created_at", "updated_at",
	}
	accountColumns = []string{
		"id", "username", "nickname", "email", "phone", "avatar", "is_superuser", "status",
	}
	pageConfig = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystem(t *testing.T) (users.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return users.New(db, discardLogger(), pageConfig), mock
}

// hashOf matches a bcrypt hash of password.
type hashOf string

func (h hashOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && bcrypt.CompareHashAndPassword([]byte(s), []byte(h)) == nil
}

func TestList(t *testing.T) {
	sys, mock := newSystem(t)
	now := time.Now()
	search := "ali"
	enabled := true

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM public.sys_user u WHERE (u.username ILIKE $1 OR u.nickname ILIKE $2 OR u.name ILIKE $3) AND u.status = $4",
	)).
		WithArgs("%ali%", "%ali%", "%ali%", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY u.id ASC LIMIT 10 OFFSET 10")).
		WithArgs("%ali%", "%ali%", "%ali%", true).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(11), "alice", "Al", nil, nil, nil, nil, int64(2), true, false, now, nil).
			AddRow(int64(12), "alina", nil, nil, nil, nil, nil, nil, true, false, now, nil))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, role_id FROM public.sys_user_role WHERE user_id IN ($1, $2) ORDER BY user_id, role_id",
	)).
		WithArgs(int64(11), int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id"}).
			AddRow(int64(11), int64(2)).
			AddRow(int64(11), int64(3)))

	page := pagination.PageRequest{Page: 2, PageSize: 10, Search: &search}
	got, err := sys.List(context.Background(), page, users.Filters{Status: &enabled})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if got.Total != 21 || got.Page != 2 || got.PageSize != 10 || len(got.Items) != 2 {
		t.Fatalf("page = %+v", got)
	}
	if !slices.Equal(got.Items[0].RoleIDs, []int64{2, 3}) {
		t.Errorf("alice roles = %v", got.Items[0].RoleIDs)
	}
	if got.Items[1].RoleIDs == nil || len(got.Items[1].RoleIDs) != 0 {
		t.Errorf("alina roles = %#v, want empty slice", got.Items[1].RoleIDs)
	}
	if got.Items[0].DeptID == nil || *got.Items[0].DeptID != 2 || got.Items[1].DeptID != nil {
		t.Errorf("dept ids = %v, %v", got.Items[0].DeptID, got.Items[1].DeptID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestList_Empty(t *testing.T) {
	sys, mock := newSystem(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM public.sys_user u")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 20 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows(userColumns))

	got, err := sys.List(context.Background(), pagination.PageRequest{}, users.Filters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Items == nil || got.Total != 0 || got.Page != 1 {
		t.Errorf("page = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreate(t *testing.T) {
	insertSQL := regexp.QuoteMeta("INSERT INTO public.sys_user")
	assignSQL := regexp.QuoteMeta("INSERT INTO public.sys_user_role (user_id, role_id) SELECT $1, r.id FROM public.sys_role r WHERE r.id IN ($2, $3)")
	cmd := users.CreateCommand{Username: "bob", Password: "secret123", Status: true, RoleIDs: []int64{3, 2, 3}}

	t.Run("created", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WithArgs("bob", hashOf("secret123"), nil, nil, nil, nil, nil, nil, true).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(5), "bob", nil, nil, nil, nil, nil, nil, true, false, time.Now(), nil))
		mock.ExpectExec(assignSQL).
			WithArgs(int64(5), int64(3), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		got, err := sys.Create(context.Background(), cmd)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.ID != 5 || !slices.Equal(got.RoleIDs, []int64{2, 3}) {
			t.Errorf("got %+v", got)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(5), "bob", nil, nil, nil, nil, nil, nil, true, false, time.Now(), nil))
		mock.ExpectExec(assignSQL).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		if _, err := sys.Create(context.Background(), cmd); !errors.Is(err, users.ErrUnknownRole) {
			t.Errorf("err = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("unknown dept", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		if _, err := sys.Create(context.Background(), cmd); !errors.Is(err, users.ErrUnknownDept) {
			t.Errorf("err = %v, want ErrUnknownDept", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		if _, err := sys.Create(context.Background(), cmd); !errors.Is(err, users.ErrDuplicate) {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	updateSQL := regexp.QuoteMeta("password = COALESCE(NULLIF($2, ''), password)")
	clearSQL := regexp.QuoteMeta("DELETE FROM public.sys_user_role WHERE user_id = $1")
	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(userColumns).
			AddRow(int64(5), "bob", nil, nil, nil, nil, nil, nil, false, false, time.Now(), time.Now())
	}

	t.Run("keeps password and clears roles", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(updateSQL).
			WithArgs("bob", "", nil, nil, nil, nil, nil, nil, false, int64(5)).
			WillReturnRows(row())
		mock.ExpectExec(clearSQL).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		got, err := sys.Update(context.Background(), 5, users.UpdateCommand{Username: "bob"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.RoleIDs == nil || len(got.RoleIDs) != 0 {
			t.Errorf("roles = %#v, want empty", got.RoleIDs)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("new password", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(updateSQL).
			WithArgs("bob", hashOf("rotated99"), nil, nil, nil, nil, nil, nil, false, int64(5)).
			WillReturnRows(row())
		mock.ExpectExec(clearSQL).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		if _, err := sys.Update(context.Background(), 5, users.UpdateCommand{Username: "bob", Password: "rotated99"}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery(updateSQL).
			WillReturnRows(sqlmock.NewRows(userColumns))
		mock.ExpectRollback()

		if _, err := sys.Update(context.Background(), 5, users.UpdateCommand{Username: "bob"}); !errors.Is(err, users.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteAndStatus(t *testing.T) {
	sys, mock := newSystem(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.sys_user WHERE id IN ($1)")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE public.sys_user SET status = $1, updated_at = NOW() WHERE id IN ($2, $3)")).
		WithArgs(true, int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := sys.Delete(context.Background(), []int64{8}); !errors.Is(err, users.ErrNotFound) {
		t.Errorf("Delete err = %v, want ErrNotFound", err)
	}
	if err := sys.UpdateStatus(context.Background(), []int64{1, 2}, true); err != nil {
		t.Errorf("UpdateStatus: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInfo(t *testing.T) {
	accountSQL := regexp.QuoteMeta("FROM public.sys_user WHERE username = $1")

	t.Run("enabled", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectQuery(accountSQL).
			WithArgs("admin").
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(int64(1), "admin", "Admin", nil, nil, nil, true, true))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT r.code FROM public.sys_role r")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("super"))

		info, err := sys.Info(context.Background(), "admin")
		if err != nil {
			t.Fatalf("Info: %v", err)
		}
		if info.HomePath != "/dashboard" || !slices.Equal(info.Roles, []string{"super"}) || !info.IsSuperuser {
			t.Errorf("info = %+v", info)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectQuery(accountSQL).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(int64(2), "eve", nil, nil, nil, nil, false, false))

		if _, err := sys.Info(context.Background(), "eve"); !errors.Is(err, users.ErrDisabled) {
			t.Errorf("err = %v, want ErrDisabled", err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectQuery(accountSQL).
			WillReturnRows(sqlmock.NewRows(accountColumns))

		if _, err := sys.Info(context.Background(), "ghost"); !errors.Is(err, users.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestVerify(t *testing.T) {
	accountSQL := regexp.QuoteMeta("FROM public.sys_user WHERE username = $1")

	tests := []struct {
		name     string
		username string
		rows     *sqlmock.Rows
		wantErr  error
		status   int
	}{
		{
			name:     "enabled",
			username: "admin",
			rows: sqlmock.NewRows(accountColumns).
				AddRow(int64(1), "admin", nil, nil, nil, nil, true, true),
		},
		{
			name:     "disabled",
			username: "eve",
			rows: sqlmock.NewRows(accountColumns).
				AddRow(int64(2), "eve", nil, nil, nil, nil, false, false),
			wantErr: users.ErrDisabled,
			status:  http.StatusForbidden,
		},
		{
			name:     "unknown",
			username: "ghost",
			rows:     sqlmock.NewRows(accountColumns),
			wantErr:  users.ErrNotFound,
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, mock := newSystem(t)
			mock.ExpectQuery(accountSQL).
				WithArgs(tt.username).
				WillReturnRows(tt.rows)

			err := sys.Verify(context.Background(), tt.username)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Verify: %v", err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if got := users.MapAccountStatus(err); got != tt.status {
					t.Errorf("MapAccountStatus = %d, want %d", got, tt.status)
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestPermissionCodes(t *testing.T) {
	accountSQL := regexp.QuoteMeta("FROM public.sys_user WHERE username = $1")

	t.Run("superuser holds every token", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectQuery(accountSQL).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(int64(1), "admin", nil, nil, nil, nil, true, true))
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT DISTINCT m.permission FROM public.sys_menu m WHERE m.status AND m.permission IS NOT NULL",
		)).
			WithoutArgs().
			WillReturnRows(sqlmock.NewRows([]string{"permission"}).
				AddRow("system:menu:view").
				AddRow("system:user:view"))

		codes, err := sys.PermissionCodes(context.Background(), "admin")
		if err != nil {
			t.Fatalf("PermissionCodes: %v", err)
		}
		if !slices.Equal(codes, []string{"system:menu:view", "system:user:view"}) {
			t.Errorf("codes = %v", codes)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("role grants", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectQuery(accountSQL).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(int64(4), "ops", nil, nil, nil, nil, false, true))
		mock.ExpectQuery(regexp.QuoteMeta("JOIN public.sys_role_menu rm ON rm.role_id = r.id")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"permission"}).AddRow("system:dept:view"))

		codes, err := sys.PermissionCodes(context.Background(), "ops")
		if err != nil {
			t.Fatalf("PermissionCodes: %v", err)
		}
		if !slices.Equal(codes, []string{"system:dept:view"}) {
			t.Errorf("codes = %v", codes)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}
