// Package docs holds the Swagger 2.0 document served at /api-docs. It mirrors
// the swag annotations on the handlers; regenerate with go generate after
// changing them.
package docs

//go:generate swag init -g cmd/api/local/main.go -d ../ -o . --outputTypes go

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
                "description": "Check if the API is running",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.HealthResponse"
                        }
                    }
                }
            }
        },
        "/api/send-bulk-email": {
            "post": {
                "description": "Send the same email to multiple recipients, one after the other. Individual failures are reported in errors.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Email"
                ],
                "summary": "Send bulk emails",
                "parameters": [
                    {
                        "description": "Bulk email to send",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/requests.SendBulkEmailRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.BulkEmailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/send-email": {
            "post": {
                "description": "Send an email to a single recipient",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Email"
                ],
                "summary": "Send a single email",
                "parameters": [
                    {
                        "description": "Email to send",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/requests.SendEmailRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.SendEmailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "requests.SendBulkEmailRequest": {
            "type": "object",
            "properties": {
                "body": {
                    "type": "string",
                    "example": "This is a bulk test email"
                },
                "html": {
                    "type": "string",
                    "example": "<h1>Bulk Email</h1>"
                },
                "recipients": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "user1@example.com",
                        "user2@example.com"
                    ]
                },
                "subject": {
                    "type": "string",
                    "example": "Bulk Test Email"
                }
            }
        },
        "requests.SendEmailRequest": {
            "type": "object",
            "properties": {
                "body": {
                    "type": "string",
                    "example": "This is a test email body"
                },
                "html": {
                    "type": "string",
                    "example": "<h1>Hello</h1><p>This is a test email</p>"
                },
                "subject": {
                    "type": "string",
                    "example": "Test Email"
                },
                "to": {
                    "type": "string",
                    "example": "recipient@example.com"
                }
            }
        },
        "responses.BulkEmailResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/responses.SendResult"
                    }
                },
                "message": {
                    "type": "string",
                    "example": "Bulk email operation completed. 1 successful, 1 failed."
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/responses.SendResult"
                    }
                },
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-01-01T12:00:00.000Z"
                }
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Invalid login: 535-5.7.8 Username and Password not accepted"
                },
                "message": {
                    "type": "string",
                    "example": "Failed to send email"
                },
                "success": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "responses.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Email Sender API is running"
                },
                "status": {
                    "type": "string",
                    "example": "success"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-01-01T12:00:00.000Z"
                }
            }
        },
        "responses.SendEmailResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Email sent successfully"
                },
                "messageId": {
                    "type": "string",
                    "example": "<abc123@gmail.com>"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-01-01T12:00:00.000Z"
                }
            }
        },
        "responses.SendResult": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Invalid recipient"
                },
                "messageId": {
                    "type": "string",
                    "example": "<abc123@gmail.com>"
                },
                "recipient": {
                    "type": "string",
                    "example": "user1@example.com"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Email Sender API",
	Description:      "A REST API for sending emails using Gmail SMTP. Supports single and bulk email sending with both plain text and HTML content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
