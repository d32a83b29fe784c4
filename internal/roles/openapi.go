package roles

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	List           *openapi.Operation
	Create         *openapi.Operation
	Update         *openapi.Operation
	Delete         *openapi.Operation
	UpdateStatus   *openapi.Operation
	Permissions    *openapi.Operation
	SetPermissions *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List roles",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
			openapi.QueryParam("code", "string", "Filter by code (contains)", false),
			openapi.QueryParam("status", "boolean", "Filter by status", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Roles", "Role"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create role",
		RequestBody: openapi.RequestBodyJSON("RoleCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created role", "Role"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update role",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Role ID"),
		},
		RequestBody: openapi.RequestBodyJSON("RoleCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated role", "Role"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete roles",
		Description: "Deletes the listed roles along with their user assignments and menu grants",
		RequestBody: openapi.RequestBodyJSON("IDList", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Roles deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateStatus: &openapi.Operation{
		Summary:     "Set role status",
		RequestBody: openapi.RequestBodyJSON("StatusCommand", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Status updated"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Permissions: &openapi.Operation{
		Summary:     "Get role permissions",
		Description: "Returns the ids of the menus granted to the role",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Role ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Granted menu ids", "MenuIDs"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	SetPermissions: &openapi.Operation{
		Summary:     "Replace role permissions",
		Description: "Replaces the role's granted menus with the given set. The previous set is discarded",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Role ID"),
		},
		RequestBody: openapi.RequestBodyJSON("PermissionsCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Stored menu ids", "MenuIDs"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Role": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "integer", Format: "int64"},
				"name":       {Type: "string"},
				"code":       {Type: "string"},
				"status":     {Type: "boolean"},
				"remark":     {Type: "string", Nullable: true},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time", Nullable: true},
			},
		},
		"RoleCommand": {
			Type:     "object",
			Required: []string{"name", "code"},
			Properties: map[string]*openapi.Schema{
				"name":   {Type: "string", Example: "Auditor"},
				"code":   {Type: "string", Example: "auditor"},
				"status": {Type: "boolean", Example: true},
				"remark": {Type: "string"},
			},
		},
		"MenuIDs": {
			Type:  "array",
			Items: &openapi.Schema{Type: "integer", Format: "int64"},
		},
		"PermissionsCommand": {
			Type:     "object",
			Required: []string{"permissions"},
			Properties: map[string]*openapi.Schema{
				"permissions": {Type: "array", Items: &openapi.Schema{Type: "integer", Format: "int64"}},
			},
		},
	}
}
