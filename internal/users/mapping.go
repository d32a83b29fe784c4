package users

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sys_user", "u").
	Project("id", "ID").
	Project("username", "Username").
	Project("nickname", "Nickname").
	Project("name", "Name").
	Project("avatar", "Avatar").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("dept_id", "DeptID").
	Project("status", "Status").
	Project("is_superuser", "IsSuperuser").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = "id, username, nickname, name, avatar, email, phone, dept_id, " +
	"status, is_superuser, created_at, updated_at"

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID, &u.Username, &u.Nickname, &u.Name, &u.Avatar, &u.Email,
		&u.Phone, &u.DeptID, &u.Status, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

type account struct {
	info   Info
	status bool
}

func scanAccount(s repository.Scanner) (account, error) {
	var a account
	err := s.Scan(
		&a.info.ID, &a.info.Username, &a.info.Nickname, &a.info.Email,
		&a.info.Phone, &a.info.Avatar, &a.info.IsSuperuser, &a.status,
	)
	return a, err
}

type assignment struct {
	userID int64
	roleID int64
}

func scanAssignment(s repository.Scanner) (assignment, error) {
	var a assignment
	err := s.Scan(&a.userID, &a.roleID)
	return a, err
}

func scanString(s repository.Scanner) (string, error) {
	var v string
	err := s.Scan(&v)
	return v, err
}

type Filters struct {
	Username *string
	Status   *bool
	DeptID   *int64
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if u := values.Get("username"); u != "" {
		f.Username = &u
	}
	if s, err := strconv.ParseBool(values.Get("status")); err == nil {
		f.Status = &s
	}
	if d, err := strconv.ParseInt(values.Get("dept_id"), 10, 64); err == nil {
		f.DeptID = &d
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Username", f.Username).
		WhereEquals("Status", f.Status).
		WhereEquals("DeptID", f.DeptID)
}
