package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// CodeSource resolves the permission codes held by a user.
type CodeSource interface {
	PermissionCodes(ctx context.Context, username string) ([]string, error)
}

// Handler serves the caller's permission codes.
type Handler struct {
	codes     CodeSource
	logger    *slog.Logger
	mapStatus func(error) int
}

// NewHandler serves /auth/codes. mapStatus translates CodeSource errors.
func NewHandler(codes CodeSource, logger *slog.Logger, mapStatus func(error) int) *Handler {
	return &Handler{
		codes:     codes,
		logger:    logger,
		mapStatus: mapStatus,
	}
}

// Routes returns the /auth route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/auth",
		Tags:        []string{"Auth"},
		Description: "Caller permission codes",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/codes", Handler: h.Codes, OpenAPI: Spec.Codes},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Codes(w http.ResponseWriter, r *http.Request) {
	subject, ok := SubjectFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNoSubject)
		return
	}

	codes, err := h.codes.PermissionCodes(r.Context(), subject.Username)
	if err != nil {
		handlers.RespondError(w, h.logger, h.mapStatus(err), err)
		return
	}

	handlers.RespondOK(w, codes)
}
