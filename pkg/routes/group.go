// Package routes declares HTTP routes alongside their OpenAPI operations and
// registers both in one pass.
package routes

import (
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/openapi"
)

// Route binds a method and pattern to a handler and its documentation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group is a set of routes under a common prefix. Children extend the prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec documents the group's routes under basePath+Prefix.
// Operations without tags inherit the group's tags; routes without OpenAPI are skipped.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	prefix := basePath + g.Prefix

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, child := range g.Children {
		child.AddToSpec(prefix, spec)
	}
}

// Register adds each group's handlers to mux relative to the module root and
// documents them in spec under basePath, the prefix the module is mounted at.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
		g.AddToSpec(basePath, spec)
	}
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}
