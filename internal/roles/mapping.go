package roles

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sys_role", "r").
	Project("id", "ID").
	Project("name", "Name").
	Project("code", "Code").
	Project("status", "Status").
	Project("remark", "Remark").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = "id, name, code, status, remark, created_at, updated_at"

func scanRole(s repository.Scanner) (Role, error) {
	var r Role
	err := s.Scan(&r.ID, &r.Name, &r.Code, &r.Status, &r.Remark, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanID(s repository.Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}

type Filters struct {
	Name   *string
	Code   *string
	Status *bool
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if c := values.Get("code"); c != "" {
		f.Code = &c
	}
	if s, err := strconv.ParseBool(values.Get("status")); err == nil {
		f.Status = &s
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereContains("Code", f.Code).
		WhereEquals("Status", f.Status)
}
