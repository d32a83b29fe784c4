package menus

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sys_menu", "m").
	Project("id", "ID").
	Project("name", "Name").
	Project("path", "Path").
	Project("component", "Component").
	Project("redirect", "Redirect").
	Project("parent_id", "ParentID").
	Project("type", "Type").
	Project("permission", "Permission").
	Project("icon", "Icon").
	Project("sort", "Sort").
	Project("status", "Status").
	Project("is_visible", "IsVisible").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = "id, name, path, component, redirect, parent_id, type, permission, " +
	"icon, sort, status, is_visible, created_at, updated_at"

var listOrder = []query.SortField{{Field: "Sort"}, {Field: "ID"}}

func scanMenu(s repository.Scanner) (Menu, error) {
	var m Menu
	err := s.Scan(
		&m.ID, &m.Name, &m.Path, &m.Component, &m.Redirect, &m.ParentID, &m.Type,
		&m.Permission, &m.Icon, &m.Sort, &m.Status, &m.IsVisible, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

type Filters struct {
	Name   *string
	Status *bool
	Type   *Type
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if s, err := strconv.ParseBool(values.Get("status")); err == nil {
		f.Status = &s
	}
	if t, err := strconv.Atoi(values.Get("type")); err == nil {
		typ := Type(t)
		f.Type = &typ
	}
	return f
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	var typ *int
	if f.Type != nil {
		t := int(*f.Type)
		typ = &t
	}
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Status", f.Status).
		WhereEquals("Type", typ)
}
