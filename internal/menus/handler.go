package menus

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// Handler exposes the menus System over HTTP: the caller's menu tree
// under /menu and menu management under /system/menu.
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

// Routes returns the menu route groups with their OpenAPI operations.
func (h *Handler) Routes() routes.Group {
	tags := []string{"Menus"}
	return routes.Group{
		Description: "Menu tree and menu management",
		Children: []routes.Group{
			{
				Prefix: "/menu",
				Tags:   tags,
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/all", Handler: h.All, OpenAPI: Spec.All},
				},
			},
			{
				Prefix: "/system/menu",
				Tags:   tags,
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/list", Handler: h.List, OpenAPI: Spec.List},
					{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
					{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
					{Method: "DELETE", Pattern: "", Handler: h.Delete, OpenAPI: Spec.Delete},
				},
			},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	tree, err := h.sys.Tree(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondOK(w, tree)
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
