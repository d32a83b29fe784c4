package openapi

import "maps"

// Components holds reusable schemas, responses and security schemes.
type Components struct {
	Schemas         map[string]*Schema         `json:"schemas,omitempty"`
	Responses       map[string]*Response       `json:"responses,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty"`
}

// NewComponents returns components seeded with the shared error responses,
// the id list and status bodies, and the bearer security scheme.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 20},
					"search":    {Type: "string", Description: "Search query"},
					"sort":      {Type: "string", Description: "Comma-separated sort fields, - prefix for descending"},
				},
			},
			"IDList": {
				Type:     "object",
				Required: []string{"ids"},
				Properties: map[string]*Schema{
					"ids": {Type: "array", Items: &Schema{Type: "integer", Format: "int64"}},
				},
			},
			"StatusCommand": {
				Type:     "object",
				Required: []string{"ids", "status"},
				Properties: map[string]*Schema{
					"ids":    {Type: "array", Items: &Schema{Type: "integer", Format: "int64"}},
					"status": {Type: "boolean"},
				},
			},
			"ErrorEnvelope": {
				Type: "object",
				Properties: map[string]*Schema{
					"code":    {Type: "integer", Example: 404},
					"data":    {Nullable: true},
					"error":   {Type: "string"},
					"message": {Type: "string", Example: "error"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":   errorResponse("Invalid request"),
			"Unauthorized": errorResponse("Missing or invalid bearer token"),
			"NotFound":     errorResponse("Resource not found"),
			"Conflict":     errorResponse("Resource conflict"),
		},
		SecuritySchemes: map[string]*SecurityScheme{
			"bearerAuth": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		},
	}
}

// AddSchemas merges schemas, overwriting entries with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges responses, overwriting entries with the same name.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("ErrorEnvelope")},
		},
	}
}
