package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

func TestCheckParent(t *testing.T) {
	existsSQL := regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM public.nodes WHERE id = $1)")
	cycleSQL := regexp.QuoteMeta("WITH RECURSIVE subtree")

	tests := []struct {
		name    string
		id      int64
		exists  bool
		cycle   *bool
		wantErr error
	}{
		{"new record", 0, true, nil, nil},
		{"missing parent", 0, false, nil, repository.ErrParentMissing},
		{"valid move", 4, true, new(bool), nil},
		{"cycle", 4, true, func() *bool { b := true; return &b }(), repository.ErrParentCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock: %v", err)
			}
			defer db.Close()

			mock.ExpectQuery(existsSQL).
				WithArgs(int64(9)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			if tt.cycle != nil {
				mock.ExpectQuery(cycleSQL).
					WithArgs(tt.id, int64(9)).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(*tt.cycle))
			}

			err = repository.CheckParent(context.Background(), db, "public.nodes", tt.id, 9)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckParent() = %v, want %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCountChildrenOutside(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM public.nodes WHERE parent_id IN ($1, $2) AND id NOT IN ($1, $2)",
	)).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repository.CountChildrenOutside(context.Background(), db, "public.nodes", []int64{1, 2})
	if err != nil || n != 3 {
		t.Errorf("CountChildrenOutside() = %d, %v; want 3", n, err)
	}
}

func TestDeleteIn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.nodes WHERE id IN ($1, $2, $3)")).
		WithArgs(int64(4), int64(5), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repository.DeleteIn(context.Background(), db, "public.nodes", []int64{4, 5, 6})
	if err != nil || n != 2 {
		t.Errorf("DeleteIn() = %d, %v; want 2", n, err)
	}
}
