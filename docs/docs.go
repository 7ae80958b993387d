// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/": {
            "get": {
                "tags": ["health"],
                "summary": "API welcome message",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/health.WelcomeResponse"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}}
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.ReadyResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.ReadyResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account and sign it in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.CredentialsRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/auth.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.CredentialsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/openai/ephemeral-key": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["realtime"],
                "summary": "Mint a short-lived realtime voice session key",
                "parameters": [{"in": "body", "name": "request", "schema": {"$ref": "#/definitions/realtime.EphemeralKeyRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/llm.MintResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/profiles.Profile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Update the caller's profile",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/profile.UpdateProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/profiles.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/topics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["topics"],
                "summary": "List conversation topics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/topics.Topic"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/topics/completed": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["topics"],
                "summary": "List topics the caller has completed",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/topics.Topic"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/topics/{id}/complete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["topics"],
                "summary": "Mark a topic as completed",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/topics.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/progress": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["progress"],
                "summary": "List the caller's session logs, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/progress.Log"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["progress"],
                "summary": "Record a session log for the caller",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/progress.CreateProgressRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/progress.Log"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "health.WelcomeResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "health.Response": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "service": {"type": "string"}, "version": {"type": "string"}}
        },
        "health.ReadyResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "database": {"type": "string"}}
        },
        "auth.CredentialsRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "auth.SessionResponse": {
            "type": "object",
            "properties": {
                "user": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}}},
                "session": {"type": "object", "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}}
            }
        },
        "realtime.EphemeralKeyRequest": {"type": "object", "properties": {"instructions": {"type": "string"}}},
        "llm.MintResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "client_secret": {"type": "object"},
                "error": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "profiles.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "x-nullable": true},
                "profile_picture_url": {"type": "string", "x-nullable": true},
                "english_level": {"type": "string", "x-nullable": true}
            }
        },
        "profile.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "profile_picture_url": {"type": "string"},
                "english_level": {"type": "string"}
            }
        },
        "topics.Topic": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "prompt_context": {"type": "string"},
                "difficulty_level": {"type": "string", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "topics.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "progress.GrammarPoint": {
            "type": "object",
            "required": ["point"],
            "properties": {
                "point": {"type": "string"},
                "examples": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "progress.CreateProgressRequest": {
            "type": "object",
            "required": ["session_date", "duration_minutes", "ai_summary", "suggested_level"],
            "properties": {
                "user_id": {"type": "string"},
                "session_date": {"type": "string", "format": "date-time"},
                "duration_minutes": {"type": "integer"},
                "topics_discussed": {"type": "array", "items": {"type": "string"}},
                "new_vocabulary": {"type": "array", "items": {"type": "string"}},
                "grammar_points": {"type": "array", "items": {"$ref": "#/definitions/progress.GrammarPoint"}},
                "ai_summary": {"type": "string"},
                "suggested_level": {"type": "string"}
            }
        },
        "progress.Log": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "string"},
                "session_date": {"type": "string", "format": "date-time"},
                "duration_minutes": {"type": "integer"},
                "topics_discussed": {"type": "array", "items": {"type": "string"}},
                "new_vocabulary": {"type": "array", "items": {"type": "string"}},
                "grammar_points": {"type": "array", "items": {"$ref": "#/definitions/progress.GrammarPoint"}},
                "ai_summary": {"type": "string"},
                "suggested_level": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Access token issued by the auth provider. Format: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Voice Tutor API",
	Description:      "Backend for a voice-first English tutoring app: accounts, realtime session keys, topics and progress.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
