package query_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "sys_user", "u").
		Project("id", "ID").
		Project("username", "Username").
		Project("status", "Status").
		Project("dept_id", "DeptID")
}

func TestProjectionMap(t *testing.T) {
	pm := newTestProjection()

	if pm.Table() != "public.sys_user u" {
		t.Errorf("Table() = %q", pm.Table())
	}
	if pm.Columns() != "u.id, u.username, u.status, u.dept_id" {
		t.Errorf("Columns() = %q", pm.Columns())
	}
	if pm.Column("Username") != "u.username" {
		t.Errorf("Column(Username) = %q", pm.Column("Username"))
	}
	if pm.Column("Unknown") != "Unknown" {
		t.Errorf("Column(Unknown) = %q, want input echoed", pm.Column("Unknown"))
	}
	if len(pm.ColumnList()) != 4 {
		t.Errorf("len(ColumnList()) = %d, want 4", len(pm.ColumnList()))
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("username, -created_at,,-")

	if len(fields) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(fields), fields)
	}
	if fields[0].Field != "username" || fields[0].Descending {
		t.Errorf("fields[0] = %+v", fields[0])
	}
	if fields[1].Field != "created_at" || !fields[1].Descending {
		t.Errorf("fields[1] = %+v", fields[1])
	}
	if query.ParseSortFields("") != nil {
		t.Error("empty input should yield nil")
	}
}

func TestBuilder_Build(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), "ID").Build()

	want := "SELECT u.id, u.username, u.status, u.dept_id FROM public.sys_user u ORDER BY u.id ASC"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     string
	}{
		{"first page", 1, 20, "LIMIT 20 OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20 OFFSET 20"},
		{"third page", 3, 10, "LIMIT 10 OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := query.NewBuilder(newTestProjection(), "ID").BuildPage(tt.page, tt.pageSize)
			if !strings.HasSuffix(sql, tt.want) {
				t.Errorf("BuildPage() = %q, want suffix %q", sql, tt.want)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), "ID").BuildSingle("ID", int64(7))

	if !strings.HasSuffix(sql, "WHERE u.id = $1") {
		t.Errorf("BuildSingle() = %q", sql)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("args = %v", args)
	}
}

func TestBuilder_Conditions(t *testing.T) {
	search := "adm"
	status := true
	var noDept *int64

	sql, args := query.NewBuilder(newTestProjection(), "ID").
		WhereSearch(&search, "Username").
		WhereEquals("Status", &status).
		WhereEquals("DeptID", noDept).
		WhereIn("ID", []any{int64(1), int64(2)}).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.sys_user u WHERE (u.username ILIKE $1) AND u.status = $2 AND u.id IN ($3, $4)"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}

	if len(args) != 4 {
		t.Fatalf("len(args) = %d, want 4", len(args))
	}
	if args[0] != "%adm%" {
		t.Errorf("args[0] = %v, want %%adm%%", args[0])
	}
	if args[1] != true {
		t.Errorf("args[1] = %v, want dereferenced true", args[1])
	}
}

func TestBuilder_IgnoresEmpty(t *testing.T) {
	empty := ""

	sql, args := query.NewBuilder(newTestProjection(), "ID").
		WhereContains("Username", nil).
		WhereContains("Username", &empty).
		WhereEquals("Status", nil).
		WhereIn("ID", nil).
		WhereSearch(nil, "Username").
		BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("BuildCount() = %q, want no WHERE", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_Ordering(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*query.Builder)
		want  string
	}{
		{"default", func(b *query.Builder) {}, "ORDER BY u.id ASC"},
		{"single desc", func(b *query.Builder) { b.OrderBy("Username", true) }, "ORDER BY u.username DESC"},
		{"empty field keeps default", func(b *query.Builder) { b.OrderBy("", false) }, "ORDER BY u.id ASC"},
		{
			"multiple fields drop unknown",
			func(b *query.Builder) {
				b.OrderByFields([]query.SortField{
					{Field: "Status", Descending: true},
					{Field: "password; DROP TABLE"},
					{Field: "Username"},
				})
			},
			"ORDER BY u.status DESC, u.username ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), "ID")
			tt.apply(b)
			sql, _ := b.Build()
			if !strings.HasSuffix(sql, tt.want) {
				t.Errorf("Build() = %q, want suffix %q", sql, tt.want)
			}
		})
	}
}
