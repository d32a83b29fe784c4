package auth

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	Codes *openapi.Operation
}

var Spec = spec{
	Codes: &openapi.Operation{
		Summary:     "Permission codes",
		Description: "Returns the permission tokens granted to the caller. Superusers receive every menu permission.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Granted permission tokens", "PermissionCodes"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"PermissionCodes": {
			Type:  "array",
			Items: &openapi.Schema{Type: "string", Example: "system:user:view"},
		},
	}
}
