// Package docs registers the API description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/maps": {
            "get": {
                "produces": ["application/json"],
                "summary": "List map documents",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/maps/{slug}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a map document",
                "parameters": [
                    {"type": "string", "description": "map slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/maps/{slug}/render": {
            "get": {
                "produces": ["application/json"],
                "summary": "Render a map document",
                "parameters": [
                    {"type": "string", "description": "map slug", "name": "slug", "in": "path", "required": true},
                    {"type": "string", "description": "on enables the filter panel", "name": "filters", "in": "query"},
                    {"type": "string", "description": "deep-link parameter name", "name": "openIdParam", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/maps/{slug}/markers/{id}/popup": {
            "get": {
                "produces": ["text/html"],
                "summary": "Get a marker's popup HTML",
                "parameters": [
                    {"type": "string", "description": "map slug", "name": "slug", "in": "path", "required": true},
                    {"type": "string", "description": "marker id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/pages/render": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Render every map container in an HTML page",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "gg-map API",
	Description:      "Stores map documents and renders them into map scenes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
