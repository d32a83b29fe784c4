package depts

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sys_dept", "d").
	Project("id", "ID").
	Project("name", "Name").
	Project("parent_id", "ParentID").
	Project("leader", "Leader").
	Project("phone", "Phone").
	Project("email", "Email").
	Project("sort", "Sort").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = "id, name, parent_id, leader, phone, email, sort, status, created_at, updated_at"

func scanDept(s repository.Scanner) (Dept, error) {
	var d Dept
	err := s.Scan(
		&d.ID, &d.Name, &d.ParentID, &d.Leader, &d.Phone,
		&d.Email, &d.Sort, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

type Filters struct {
	Name   *string
	Status *bool
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if s, err := strconv.ParseBool(values.Get("status")); err == nil {
		f.Status = &s
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Status", f.Status)
}
