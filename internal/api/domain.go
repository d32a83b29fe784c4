package api

import (
	"github.com/JaimeStill/admin-console/internal/depts"
	"github.com/JaimeStill/admin-console/internal/menus"
	"github.com/JaimeStill/admin-console/internal/roles"
	"github.com/JaimeStill/admin-console/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Depts depts.System
	Menus menus.System
	Roles roles.System
	Users users.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Depts: depts.New(db, runtime.Logger),
		Menus: menus.New(db, runtime.Logger),
		Roles: roles.New(db, runtime.Logger),
		Users: users.New(db, runtime.Logger, runtime.Pagination),
	}
}
