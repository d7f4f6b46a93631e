// Package docs registers the OpenAPI document served at /swagger. The
// template is regenerated from handler annotations with swag init.
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
        "/v1/auth/change-password": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Change password",
                "description": "Change the caller's password after verifying the current one.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "description": "Change Password Request", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Password changed successfully", "schema": {"$ref": "#/definitions/response.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login a user",
                "description": "Login a user with the provided credentials.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "description": "Login Request", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "User logged in successfully", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/auth/refresh-token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Refresh user token",
                "description": "Refresh user token using the provided refresh token.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "description": "Refresh Token Request", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Token refreshed successfully", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new user",
                "description": "Register a new user with the provided details.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "description": "Register Request", "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "User registered successfully", "schema": {"$ref": "#/definitions/response.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/destinations/price-bounds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Destination"],
                "summary": "Get price bounds",
                "description": "Retrieve the minimum and maximum approximate nightly price across active properties.",
                "responses": {
                    "200": {"description": "Price bounds", "schema": {"$ref": "#/definitions/response.Data"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/destinations/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Destination"],
                "summary": "Search properties",
                "description": "Search active properties by type, amenities, price range and region.",
                "parameters": [
                    {"name": "types", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Property types"},
                    {"name": "amenities", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Required amenities"},
                    {"name": "min_price_dzd", "in": "query", "type": "integer", "description": "Minimum approximate nightly price in DZD"},
                    {"name": "max_price_dzd", "in": "query", "type": "integer", "description": "Maximum approximate nightly price in DZD"},
                    {"name": "wilaya", "in": "query", "type": "string", "description": "Region name"}
                ],
                "responses": {
                    "200": {"description": "Matching properties", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/destinations/top": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Destination"],
                "summary": "Get top regions",
                "description": "Retrieve the regions with the most active properties, ordered by listing count.",
                "responses": {
                    "200": {"description": "Top regions", "schema": {"$ref": "#/definitions/response.Data"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Get all properties",
                "description": "Retrieve properties with optional filtering and pagination.",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "description": "Filter by status"},
                    {"name": "type", "in": "query", "type": "string", "description": "Filter by property type"},
                    {"name": "wilaya_key", "in": "query", "type": "string", "description": "Filter by region key"}
                ],
                "responses": {
                    "200": {"description": "List of properties", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Publication"],
                "summary": "Publish a property",
                "description": "Create a property in pending review, upload its photos and create its room types. Partial failures keep completed steps and can be resumed.",
                "parameters": [
                    {"name": "data", "in": "formData", "type": "string", "required": true, "description": "Publish payload as JSON"},
                    {"name": "photos", "in": "formData", "type": "file", "description": "Property photos"}
                ],
                "responses": {
                    "202": {"description": "Publish started", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties/owned": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Get owned properties",
                "description": "Retrieve the properties owned by the caller or any of their organizations.",
                "responses": {
                    "200": {"description": "Owned properties", "schema": {"$ref": "#/definitions/response.Data"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Get a property by ID",
                "description": "Retrieve a property by its unique identifier.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Property ID"}
                ],
                "responses": {
                    "200": {"description": "Property details", "schema": {"$ref": "#/definitions/response.Data"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties/{id}/publish": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Publication"],
                "summary": "Get publish job",
                "description": "Retrieve the durable publish record with live upload progress when available.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Property ID"}
                ],
                "responses": {
                    "200": {"description": "Publish job", "schema": {"$ref": "#/definitions/response.Data"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties/{id}/publish/resume": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Publication"],
                "summary": "Resume a publish job",
                "description": "Execute the remaining steps of an incomplete publish run with resubmitted assets.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Property ID"},
                    {"name": "data", "in": "formData", "type": "string", "description": "Resume payload as JSON"},
                    {"name": "photos", "in": "formData", "type": "file", "description": "Property photos"}
                ],
                "responses": {
                    "200": {"description": "Publish job after resume", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties/{id}/room-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["RoomType"],
                "summary": "Get room types",
                "description": "Retrieve the room types of a property in creation order.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Property ID"}
                ],
                "responses": {
                    "200": {"description": "Room types", "schema": {"$ref": "#/definitions/response.Data"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/properties/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Set property status",
                "description": "Apply a status transition to a property. Disallowed transitions are rejected.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "Property ID"},
                    {"name": "request", "in": "body", "required": true, "description": "Target status", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Status change result", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Get all users",
                "description": "Retrieve all users with optional filtering and pagination.",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "description": "Filter by email"},
                    {"name": "role", "in": "query", "type": "string", "description": "Filter by role"}
                ],
                "responses": {
                    "200": {"description": "List of users", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Create a new user",
                "description": "Create a new user with the provided details.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "description": "Create User Request", "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "User created successfully", "schema": {"$ref": "#/definitions/response.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/users/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Get own profile",
                "description": "Retrieve the caller's profile, creating a default host profile on first access.",
                "responses": {
                    "200": {"description": "Profile details", "schema": {"$ref": "#/definitions/response.Data"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/v1/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Get a user by ID",
                "description": "Retrieve a user by their unique identifier.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "User ID"}
                ],
                "responses": {
                    "200": {"description": "User details", "schema": {"$ref": "#/definitions/response.Data"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Update a user by ID",
                "description": "Update the details of an existing user.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "User ID"},
                    {"name": "request", "in": "body", "required": true, "description": "Update User Request", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "User updated successfully", "schema": {"$ref": "#/definitions/response.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["User"],
                "summary": "Delete a user by ID",
                "description": "Delete a user using their unique identifier.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true, "description": "User ID"}
                ],
                "responses": {
                    "200": {"description": "User deleted successfully", "schema": {"$ref": "#/definitions/response.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        }
    },
    "definitions": {
        "response.Data": {
            "type": "object",
            "properties": {
                "data": {"type": "object"}
            }
        },
        "response.Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "response.Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookini API",
	Description:      "Property publication, browsing and moderation API for stays in Algeria.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
