// Package docs registers the OpenAPI description of the health reporting service with swag.
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
        "/health": {
            "get": {
                "description": "Reports healthy with 200 when the model and encoder are loaded, unhealthy with 500 otherwise.",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Static application, model and runtime information. Always 200.",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Application metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MetricsResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "200 when the model is loaded, 503 otherwise.",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ReadyResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ReadyResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AppInfo": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "house-price-estimator"},
                "uptime": {"type": "string", "example": "1h2m3s"},
                "uptime_seconds": {"type": "number", "example": 3723},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "handlers.HealthResponse": {
            "description": "HealthResponse reports whether the model artifacts are loaded.",
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Model file not found: model_estimate_price_house_v5.json"},
                "model_loaded": {"type": "boolean", "example": true},
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2025-05-29T10:00:00.000000000+07:00"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "handlers.MetricsResponse": {
            "type": "object",
            "properties": {
                "app_info": {"$ref": "#/definitions/handlers.AppInfo"},
                "model_info": {"$ref": "#/definitions/handlers.ModelInfo"},
                "system_info": {"$ref": "#/definitions/handlers.SystemInfo"}
            }
        },
        "handlers.ModelInfo": {
            "type": "object",
            "properties": {
                "encoder_file": {"type": "string", "example": "encoder_v5.json"},
                "model_file": {"type": "string", "example": "model_estimate_price_house_v5.json"},
                "model_loaded": {"type": "boolean", "example": true}
            }
        },
        "handlers.ReadyResponse": {
            "type": "object",
            "properties": {
                "reason": {"type": "string", "example": "model not loaded"},
                "status": {"type": "string", "example": "ready"}
            }
        },
        "handlers.SystemInfo": {
            "type": "object",
            "properties": {
                "go_version": {"type": "string", "example": "go1.23.9"},
                "timestamp": {"type": "string", "example": "2025-05-29T10:00:00.000000000+07:00"}
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
	Title:            "House Price Estimator Health API",
	Description:      "Liveness, readiness and metrics endpoints for the house price model.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
