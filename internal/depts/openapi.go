package depts

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List depts",
		Description: "Returns every department ordered by sort",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
			openapi.QueryParam("status", "boolean", "Filter by status", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Departments", "Dept"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create dept",
		RequestBody: openapi.RequestBodyJSON("DeptCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created dept", "Dept"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update dept",
		Description: "Replaces a department. The parent may not be the dept or one of its descendants",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Dept ID"),
		},
		RequestBody: openapi.RequestBodyJSON("DeptCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated dept", "Dept"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete depts",
		Description: "Deletes the listed departments. Users in them are detached",
		RequestBody: openapi.RequestBodyJSON("IDList", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Depts deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Dept": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "integer", Format: "int64"},
				"name":       {Type: "string"},
				"parent_id":  {Type: "integer", Format: "int64", Description: "0 for roots"},
				"leader":     {Type: "string", Nullable: true},
				"phone":      {Type: "string", Nullable: true},
				"email":      {Type: "string", Nullable: true},
				"sort":       {Type: "integer"},
				"status":     {Type: "boolean"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time", Nullable: true},
			},
		},
		"DeptCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":      {Type: "string", Example: "Engineering"},
				"parent_id": {Type: "integer", Format: "int64", Example: 1},
				"leader":    {Type: "string"},
				"phone":     {Type: "string"},
				"email":     {Type: "string", Format: "email"},
				"sort":      {Type: "integer"},
				"status":    {Type: "boolean", Example: true},
			},
		},
	}
}
