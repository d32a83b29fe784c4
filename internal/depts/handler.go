package depts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// Handler exposes the depts System over HTTP under /system/dept.
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
		Prefix:      "/system/dept",
		Tags:        []string{"Depts"},
		Description: "Department tree management",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/list", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "", Handler: h.Delete, OpenAPI: Spec.Delete},
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
