package roles

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// Handler exposes the roles System over HTTP under /system/role.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler; errors map through MapHTTPStatus.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/system/role",
		Tags:        []string{"Roles"},
		Description: "Role and role permission management",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/list", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PUT", Pattern: "/status", Handler: h.UpdateStatus, OpenAPI: Spec.UpdateStatus},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "GET", Pattern: "/{id}/permissions", Handler: h.Permissions, OpenAPI: Spec.Permissions},
			{Method: "PUT", Pattern: "/{id}/permissions", Handler: h.SetPermissions, OpenAPI: Spec.SetPermissions},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context(), FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondOK(w, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd Command
	if !handlers.Bind(w, r, h.logger, &cmd) {
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd Command
	if !handlers.Bind(w, r, h.logger, &cmd) {
		return
	}

	result, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var cmd DeleteCommand
	if !handlers.Bind(w, r, h.logger, &cmd) {
		return
	}

	if err := h.sys.Delete(r.Context(), cmd.IDs); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, nil)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var cmd StatusCommand
	if !handlers.Bind(w, r, h.logger, &cmd) {
		return
	}

	if err := h.sys.UpdateStatus(r.Context(), cmd.IDs, cmd.Status); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, nil)
}

func (h *Handler) Permissions(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Permissions(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, result)
}

func (h *Handler) SetPermissions(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd PermissionsCommand
	if !handlers.Bind(w, r, h.logger, &cmd) {
		return
	}

	result, err := h.sys.SetPermissions(r.Context(), id, cmd.Permissions)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, result)
}
