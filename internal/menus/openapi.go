package menus

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	All    *openapi.Operation
	List   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	All: &openapi.Operation{
		Summary:     "Menu tree",
		Description: "Returns enabled menus nested by parent and ordered by sort. Leaves omit children",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Menu tree roots", "MenuNode"),
		},
	},
	List: &openapi.Operation{
		Summary: "List menus",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
			openapi.QueryParam("status", "boolean", "Filter by status", false),
			openapi.QueryParam("type", "integer", "Filter by type: 0 directory, 1 menu, 2 button", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Menus", "Menu"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create menu",
		RequestBody: openapi.RequestBodyJSON("MenuCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created menu", "Menu"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update menu",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Menu ID"),
		},
		RequestBody: openapi.RequestBodyJSON("MenuCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated menu", "Menu"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete menus",
		Description: "Deletes the listed menus and revokes them from every role",
		RequestBody: openapi.RequestBodyJSON("IDList", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Menus deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func menuProperties() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"id":         {Type: "integer", Format: "int64"},
		"name":       {Type: "string"},
		"path":       {Type: "string", Nullable: true},
		"component":  {Type: "string", Nullable: true},
		"redirect":   {Type: "string", Nullable: true},
		"parent_id":  {Type: "integer", Format: "int64"},
		"type":       {Type: "integer", Description: "0 directory, 1 menu, 2 button"},
		"permission": {Type: "string", Nullable: true, Example: "system:user:view"},
		"icon":       {Type: "string", Nullable: true},
		"sort":       {Type: "integer"},
		"status":     {Type: "boolean"},
		"isVisible":  {Type: "boolean"},
		"created_at": {Type: "string", Format: "date-time"},
		"updated_at": {Type: "string", Format: "date-time", Nullable: true},
	}
}

func (spec) Schemas() map[string]*openapi.Schema {
	node := menuProperties()
	node["children"] = &openapi.Schema{Type: "array", Items: openapi.SchemaRef("MenuNode")}

	return map[string]*openapi.Schema{
		"Menu":     {Type: "object", Properties: menuProperties()},
		"MenuNode": {Type: "object", Properties: node},
		"MenuCommand": {
			Type:     "object",
			Required: []string{"name", "type"},
			Properties: map[string]*openapi.Schema{
				"name":       {Type: "string", Example: "UserManagement"},
				"path":       {Type: "string", Example: "/system/user"},
				"component":  {Type: "string"},
				"redirect":   {Type: "string"},
				"parent_id":  {Type: "integer", Format: "int64"},
				"type":       {Type: "integer", Example: 1},
				"permission": {Type: "string", Example: "system:user:view"},
				"icon":       {Type: "string", Example: "lucide:users"},
				"sort":       {Type: "integer"},
				"status":     {Type: "boolean"},
				"isVisible":  {Type: "boolean"},
			},
		},
	}
}
