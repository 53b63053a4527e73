// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Current user, every other user, the user's own items and all items owned by others.",
                "produces": ["text/html"],
                "tags": ["wishlist"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK"},
                    "302": {"description": "Redirect to /login when not logged in"}
                }
            }
        },
        "/register": {
            "get": {
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Registration form",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"type": "string", "description": "Display name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Unique username (4-20 characters)", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password (at least 8 characters)", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Hire date, must be today (YYYY-MM-DD)", "name": "date_hired", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /login on success, back to /register on a rule violation"},
                    "400": {"description": "Malformed form body"}
                }
            }
        },
        "/login": {
            "get": {
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Login form",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Login form with an error message"},
                    "302": {"description": "Redirect to / with an authenticated session"}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"302": {"description": "Redirect to /login"}}
            }
        },
        "/add_item": {
            "get": {
                "produces": ["text/html"],
                "tags": ["wishlist"],
                "summary": "Add item form",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["wishlist"],
                "summary": "Add item",
                "parameters": [
                    {"type": "string", "description": "Item name (1-100 characters)", "name": "item_name", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Form shown again with an error message"},
                    "302": {"description": "Redirect to / after creating the item"}
                }
            }
        },
        "/add_wishlist_item/{id}": {
            "get": {
                "tags": ["wishlist"],
                "summary": "Copy item into my wishlist",
                "parameters": [
                    {"type": "integer", "description": "Source item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /"},
                    "404": {"description": "Non-numeric id"}
                }
            }
        },
        "/item_details/{id}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["wishlist"],
                "summary": "Item details",
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown or non-numeric id"}
                }
            }
        },
        "/remove_wishlist_item/{id}": {
            "get": {
                "tags": ["wishlist"],
                "summary": "Remove item",
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /"},
                    "404": {"description": "Unknown or non-numeric id"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}
                },
                "status": {"type": "string"}
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
	Title:            "Wishlist",
	Description:      "Shared wishlists for coworkers: accounts, personal lists and copying items from other users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
