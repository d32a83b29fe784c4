package users

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// Handler exposes the users System over HTTP: user management under
// /system/user and the caller's profile under /user/info.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler. List requests are bounded by pagination.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
	}
}

// Routes returns the user route group with its OpenAPI operations.
func (h *Handler) Routes() routes.Group {
	tags := []string{"Users"}
	return routes.Group{
		Description: "Caller profile and user management",
		Children: []routes.Group{
			{
				Prefix: "/user",
				Tags:   tags,
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/info", Handler: h.Info, OpenAPI: Spec.Info},
				},
			},
			{
				Prefix: "/system/user",
				Tags:   tags,
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/list", Handler: h.List, OpenAPI: Spec.List},
					{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
					{Method: "PUT", Pattern: "/status", Handler: h.UpdateStatus, OpenAPI: Spec.UpdateStatus},
					{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
					{Method: "DELETE", Pattern: "", Handler: h.Delete, OpenAPI: Spec.Delete},
				},
			},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.SubjectFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrNoSubject)
		return
	}

	info, err := h.sys.Info(r.Context(), subject.Username)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, info)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondOK(w, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
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

	var cmd UpdateCommand
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
