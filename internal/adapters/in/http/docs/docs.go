// Package docs holds the Swagger 2.0 description of the order API, registered
// with swag so echo-swagger can serve it, and its OpenAPI 3 rendition.
package docs

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

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
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List the orders of one status tab, newest first",
                "parameters": [
                    {
                        "enum": ["deposit_paid", "ordered", "shipped"],
                        "type": "string",
                        "default": "deposit_paid",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderList"}},
                    "400": {"description": "Unknown status", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an order",
                "parameters": [
                    {"type": "string", "description": "OrderPayload as JSON", "name": "data", "in": "formData", "required": true},
                    {"type": "file", "name": "images", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SingleOrder"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "502": {"description": "Image storage failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get one order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SingleOrder"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Delete an order and its images",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/edit": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Edit an order and reconcile its images",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "OrderPayload as JSON", "name": "data", "in": "formData", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Image URLs to keep, in order", "name": "oldImages", "in": "formData"},
                    {"type": "file", "name": "newImages", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SingleOrder"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/next-status": {
            "post": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Advance an order to the next status",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusChange"}},
                    "400": {"description": "Unknown status", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/delete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Delete an order and its images",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/stats/monthly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Monthly order statistics",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid period", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Customers by order count",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Month to date figures, seven day revenue trend and recent orders",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer": {"type": "string"},
                "size": {"type": "string", "enum": ["XS", "S", "M", "L", "custom"]},
                "sizeLabel": {"type": "string"},
                "customSizeNote": {"type": "string"},
                "missingCustomSizeNote": {"type": "boolean"},
                "shape": {"type": "string"},
                "shapeLabel": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "string"},
                "note": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "coverImage": {"type": "string"},
                "status": {"type": "string", "enum": ["deposit_paid", "ordered", "shipped"]},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "OrderList": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "cached": {"type": "boolean"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/Order"}}
            }
        },
        "SingleOrder": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "cached": {"type": "boolean"},
                "data": {"$ref": "#/definitions/Order"}
            }
        },
        "StatusChange": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Nail Orders API",
	Description:      "Back-office for press-on nail orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

var openAPI3 = sync.OnceValues(func() (*openapi3.T, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc2); err != nil {
		return nil, err
	}
	return openapi2conv.ToV3(&doc2)
})

// OpenAPI3 returns the API description converted to OpenAPI 3.
func OpenAPI3() (*openapi3.T, error) {
	return openAPI3()
}
