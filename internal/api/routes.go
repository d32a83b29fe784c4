package api

import (
	"net/http"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/depts"
	"github.com/JaimeStill/admin-console/internal/menus"
	"github.com/JaimeStill/admin-console/internal/roles"
	"github.com/JaimeStill/admin-console/internal/users"
	"github.com/JaimeStill/admin-console/pkg/openapi"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	authHandler := auth.NewHandler(domain.Users, runtime.Logger, users.MapHTTPStatus)
	userHandler := users.NewHandler(domain.Users, runtime.Logger, runtime.Pagination)
	roleHandler := roles.NewHandler(domain.Roles, runtime.Logger)
	menuHandler := menus.NewHandler(domain.Menus, runtime.Logger)
	deptHandler := depts.NewHandler(domain.Depts, runtime.Logger)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		authHandler.Routes(),
		userHandler.Routes(),
		roleHandler.Routes(),
		menuHandler.Routes(),
		deptHandler.Routes(),
	)
}
