// Package console serves the server-rendered admin shell: the navigation menu
// filtered by the caller's permission codes and one page per table leaf.
package console

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/i18n"
	"github.com/JaimeStill/admin-console/pkg/navigation"
	"github.com/JaimeStill/admin-console/pkg/web"
)

//go:embed templates
var templateFS embed.FS

//go:embed locales/*.toml
var localeFS embed.FS

const (
	layout    = "console.html"
	errorPage = "error.html"
)

var errorTitles = map[int]string{
	http.StatusUnauthorized: "page.error.unauthorized",
	http.StatusForbidden:    "page.error.forbidden",
	http.StatusNotFound:     "page.error.not_found",
}

// Config locates the console and the API its pages call.
type Config struct {
	BasePath    string
	APIBasePath string
	Locale      string
}

// Breadcrumb is one ancestor of the rendered leaf.
type Breadcrumb struct {
	Title string
	Path  string
}

// View is the console-specific data handed to every template as .Data.
type View struct {
	Path        string
	APIBasePath string
	Menu        []navigation.MenuItem
	Breadcrumbs []Breadcrumb
	Status      int
}

// Handler renders console pages and the caller's menu.
type Handler struct {
	cfg       Config
	table     navigation.Table
	resolver  *navigation.Resolver
	bundle    *i18n.Bundle
	errors    *web.Page
	codes     auth.CodeSource
	mapStatus func(error) int
	logger    *slog.Logger
}

// NewHandler parses the layouts, loads the locale catalogs and validates the
// route table. Page templates are parsed on first navigation.
func NewHandler(cfg Config, codes auth.CodeSource, mapStatus func(error) int, logger *slog.Logger) (*Handler, error) {
	tmpls, err := web.NewTemplates(templateFS, "templates/layouts/*.html", "templates/pages", layout)
	if err != nil {
		return nil, err
	}

	bundle, err := i18n.LoadBundle(localeFS, "locales", cfg.Locale)
	if err != nil {
		return nil, err
	}

	table := Table(func(page string) navigation.Loader {
		return func(context.Context) (any, error) {
			return tmpls.Page(page)
		}
	})
	if err := table.Validate(); err != nil {
		return nil, err
	}

	errs, err := tmpls.Page(errorPage)
	if err != nil {
		return nil, err
	}

	return &Handler{
		cfg:       cfg,
		table:     table,
		resolver:  navigation.NewResolver(table),
		bundle:    bundle,
		errors:    errs,
		codes:     codes,
		mapStatus: mapStatus,
		logger:    logger.With("system", "console"),
	}, nil
}

// Routes returns the console mux: the home redirect, the menu endpoint and
// one page per table leaf.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /menu", h.Menu)
	mux.HandleFunc("GET /{path...}", h.Page)
	return mux
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.cfg.BasePath+HomePath, http.StatusFound)
}

// Menu returns the localized menu visible to the caller.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	grants, err := h.grants(r)
	if err != nil {
		handlers.RespondError(w, h.logger, h.status(err), err)
		return
	}
	handlers.RespondOK(w, navigation.BuildMenu(h.table, grants, h.catalog(r)))
}

// Page renders the leaf at the request path inside the layout.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	path := "/" + r.PathValue("path")
	catalog := h.catalog(r)

	grants, err := h.grants(r)
	if err != nil {
		status := h.status(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("resolve grants failed", "path", path, "error", err)
		}
		h.renderError(w, catalog, View{Path: path}, status)
		return
	}

	view := View{
		Path:        path,
		APIBasePath: h.cfg.APIBasePath,
		Menu:        navigation.BuildMenu(h.table, grants, catalog),
	}

	leaf, ancestors, ok := h.table.Find(path)
	if !ok {
		h.renderError(w, catalog, view, http.StatusNotFound)
		return
	}
	if !navigation.Visible(h.table, path, grants) {
		h.renderError(w, catalog, view, http.StatusForbidden)
		return
	}

	page, err := h.resolve(r.Context(), leaf.Name)
	if err != nil {
		h.logger.Error("resolve view failed", "view", leaf.Name, "error", err)
		h.renderError(w, catalog, view, http.StatusInternalServerError)
		return
	}

	for _, a := range ancestors {
		view.Breadcrumbs = append(view.Breadcrumbs, Breadcrumb{
			Title: catalog.Translate(a.Meta.Title),
			Path:  a.Path,
		})
	}
	view.Status = http.StatusOK

	data := h.pageData(catalog, catalog.Translate(leaf.Meta.Title), view)
	if err := page.Render(w, http.StatusOK, data); err != nil {
		h.logger.Error("render page failed", "view", leaf.Name, "error", err)
		h.renderError(w, catalog, view, http.StatusInternalServerError)
	}
}

// Authenticate refuses requests that authn rejects. The menu endpoint answers
// with the JSON envelope; every other path renders the HTML error page.
func (h *Handler) Authenticate(authn *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, status, err := authn.Authenticate(r)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(auth.WithSubject(r.Context(), subject)))
				return
			}

			if r.URL.Path == "/menu" {
				handlers.RespondError(w, h.logger, status, err)
				return
			}
			if status >= http.StatusInternalServerError {
				h.logger.Error("authenticate failed", "path", r.URL.Path, "error", err)
			}
			h.renderError(w, h.catalog(r), View{Path: r.URL.Path}, status)
		})
	}
}

func (h *Handler) resolve(ctx context.Context, name string) (*web.Page, error) {
	v, err := h.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	page, ok := v.(*web.Page)
	if !ok {
		return nil, fmt.Errorf("view %s: unexpected type %T", name, v)
	}
	return page, nil
}

func (h *Handler) grants(r *http.Request) (navigation.Authorizer, error) {
	subject, ok := auth.SubjectFrom(r.Context())
	if !ok {
		return nil, auth.ErrNoSubject
	}
	codes, err := h.codes.PermissionCodes(r.Context(), subject.Username)
	if err != nil {
		return nil, err
	}
	return navigation.NewGrantSet(codes...), nil
}

func (h *Handler) status(err error) int {
	if errors.Is(err, auth.ErrNoSubject) {
		return http.StatusUnauthorized
	}
	return h.mapStatus(err)
}

// catalog picks the first Accept-Language tag; unknown tags fall back to the
// configured locale.
func (h *Handler) catalog(r *http.Request) *i18n.Catalog {
	tag, _, _ := strings.Cut(r.Header.Get("Accept-Language"), ",")
	tag, _, _ = strings.Cut(tag, ";")
	return h.bundle.Catalog(strings.TrimSpace(tag))
}

func (h *Handler) pageData(catalog *i18n.Catalog, title string, view View) web.PageData {
	return web.PageData{
		Title:    title,
		Locale:   catalog.Locale(),
		BasePath: h.cfg.BasePath,
		Data:     view,
	}
}

func (h *Handler) renderError(w http.ResponseWriter, catalog *i18n.Catalog, view View, status int) {
	key, ok := errorTitles[status]
	if !ok {
		key = "page.error.internal"
	}
	view.Status = status

	if err := h.errors.Render(w, status, h.pageData(catalog, catalog.Translate(key), view)); err != nil {
		h.logger.Error("render error page failed", "status", status, "error", err)
		http.Error(w, http.StatusText(status), status)
	}
}
