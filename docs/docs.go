// Package docs holds the Swagger document served at /swagger. Keep it in sync with the
// swag annotations on the handlers and in cmd/api/main.go.
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
        "/api/classify": {
            "post": {
                "description": "Classifies a corporate email as Produtivo/Improdutivo and suggests a reply.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Classification"
                ],
                "summary": "Classify an email",
                "parameters": [
                    {
                        "description": "Email content",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.classifyReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.classifyResp"
                        },
                        "headers": {
                            "X-Model-Used": {
                                "type": "string",
                                "description": "Model that produced the classification"
                            }
                        }
                    },
                    "400": {
                        "description": "Empty content or invalid body",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResp"
                        }
                    },
                    "429": {
                        "description": "Rate limit exhausted on every attempt",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResp"
                        }
                    },
                    "500": {
                        "description": "Invalid model output or internal error",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResp"
                        }
                    }
                }
            }
        },
        "/api/models": {
            "get": {
                "description": "Returns the models offered by the completion provider.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Classification"
                ],
                "summary": "List available models",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.modelsResp"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Liveness probe. Does not contact the completion provider.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.classifyReq": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                }
            }
        },
        "http.classifyResp": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "sentiment": {
                    "type": "string"
                },
                "suggestedResponse": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                }
            }
        },
        "http.modelResp": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "http.modelsResp": {
            "type": "object",
            "properties": {
                "available_models": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.modelResp"
                    }
                },
                "provider": {
                    "type": "string"
                }
            }
        },
        "response.ErrorResp": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "FinMail AI Classifier API",
	Description:      "Classifies corporate emails as Produtivo/Improdutivo and suggests a reply, with model fallback over Groq.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
