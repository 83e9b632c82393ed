// Package docs holds the Swagger spec served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go
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
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/process_text": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Extraction"],
                "summary": "Extract entities from one sentence",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.processTextReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.processTextResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/process": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Extraction"],
                "summary": "Extract entities from a list of tasks",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.processReq"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/process_file": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Extraction"],
                "summary": "Process the batch input file",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Input file not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/calendar/create_event": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Create a calendar event",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Calendar not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/calendar/create_from_nlp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Extract a task and schedule it",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "List upcoming events",
                "parameters": [
                    {"type": "integer", "default": 10, "name": "max_results", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/event/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Get one event",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Delete one event",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "http.processTextReq": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "http.processTextResp": {
            "type": "object",
            "properties": {"extracted_data": {"$ref": "#/definitions/model.EntityBundle"}}
        },
        "http.processReq": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"type": "object", "properties": {"text": {"type": "string"}}}}
            }
        },
        "model.EntityBundle": {
            "type": "object",
            "properties": {
                "task": {"type": "string"},
                "date": {"type": "string", "x-nullable": true},
                "time": {"type": "string", "x-nullable": true},
                "end_time": {"type": "string", "x-nullable": true},
                "participants": {"type": "array", "items": {"type": "string"}},
                "locations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "NLP Task Calendar API",
	Description:      "Extracts task, date, time, participants and locations from natural-language task sentences and schedules them in Google Calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
