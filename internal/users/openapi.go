package users

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	Info         *openapi.Operation
	List         *openapi.Operation
	Create       *openapi.Operation
	Update       *openapi.Operation
	Delete       *openapi.Operation
	UpdateStatus *openapi.Operation
}

var Spec = spec{
	Info: &openapi.Operation{
		Summary:     "Current user",
		Description: "Returns the authenticated caller with role codes and home path",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Caller profile", "UserInfo"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List users",
		Description: "Returns a page of users with their role ids",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches username, nickname or name", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("username", "string", "Filter by username (contains)", false),
			openapi.QueryParam("status", "boolean", "Filter by status", false),
			openapi.QueryParam("dept_id", "integer", "Filter by department", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of users", "UserPageResult"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create user",
		RequestBody: openapi.RequestBodyJSON("CreateUserCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created user", "User"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update user",
		Description: "Replaces a user and its roles. An empty password keeps the current one",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "User ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateUserCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated user", "User"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete users",
		RequestBody: openapi.RequestBodyJSON("IDList", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Users deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateStatus: &openapi.Operation{
		Summary:     "Set user status",
		RequestBody: openapi.RequestBodyJSON("StatusCommand", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Status updated"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func commandProperties() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"username": {Type: "string", Example: "jdoe"},
		"password": {Type: "string", Format: "password"},
		"nickname": {Type: "string"},
		"name":     {Type: "string"},
		"avatar":   {Type: "string"},
		"email":    {Type: "string", Format: "email"},
		"phone":    {Type: "string"},
		"dept_id":  {Type: "integer", Format: "int64"},
		"status":   {Type: "boolean"},
		"role_ids": {Type: "array", Items: &openapi.Schema{Type: "integer", Format: "int64"}},
	}
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "integer", Format: "int64"},
				"username":     {Type: "string"},
				"nickname":     {Type: "string", Nullable: true},
				"name":         {Type: "string", Nullable: true},
				"avatar":       {Type: "string", Nullable: true},
				"email":        {Type: "string", Nullable: true},
				"phone":        {Type: "string", Nullable: true},
				"dept_id":      {Type: "integer", Format: "int64", Nullable: true},
				"status":       {Type: "boolean"},
				"is_superuser": {Type: "boolean"},
				"role_ids":     {Type: "array", Items: &openapi.Schema{Type: "integer", Format: "int64"}},
				"created_at":   {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time", Nullable: true},
			},
		},
		"UserInfo": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "integer", Format: "int64"},
				"username":     {Type: "string"},
				"nickname":     {Type: "string", Nullable: true},
				"email":        {Type: "string", Nullable: true},
				"phone":        {Type: "string", Nullable: true},
				"avatar":       {Type: "string", Nullable: true},
				"is_superuser": {Type: "boolean"},
				"roles":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"homePath":     {Type: "string", Example: HomePath},
			},
		},
		"UserPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"items":     {Type: "array", Items: openapi.SchemaRef("User")},
				"total":     {Type: "integer"},
				"page":      {Type: "integer"},
				"page_size": {Type: "integer"},
			},
		},
		"CreateUserCommand": {
			Type:       "object",
			Required:   []string{"username", "password"},
			Properties: commandProperties(),
		},
		"UpdateUserCommand": {
			Type:        "object",
			Required:    []string{"username"},
			Description: "An empty password keeps the stored one",
			Properties:  commandProperties(),
		},
	}
}
