// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Storage unreachable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/catalog/items": {"get": {"tags": ["Catalog"], "summary": "List items", "parameters": [
            {"type": "string", "name": "search", "in": "query"},
            {"type": "string", "name": "category", "in": "query"},
            {"type": "string", "name": "sort", "in": "query", "enum": ["name", "price", "quantity"]},
            {"type": "string", "name": "order", "in": "query", "enum": ["asc", "desc"]}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad sort or category"}}}},
        "/api/v1/catalog/items/{id}": {"get": {"tags": ["Catalog"], "summary": "Item detail", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Item not found"}}}},
        "/api/v1/catalog/categories": {"get": {"tags": ["Catalog"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/items": {"post": {"tags": ["Inventory"], "summary": "Create an item", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid item"}, "401": {"description": "Unauthorized"}}}},
        "/api/v1/admin/items/{id}": {
            "put": {"tags": ["Inventory"], "summary": "Update an item", "responses": {"200": {"description": "OK"}, "404": {"description": "Item not found"}}},
            "delete": {"tags": ["Inventory"], "summary": "Delete an item", "responses": {"200": {"description": "OK"}, "404": {"description": "Item not found"}}}
        },
        "/api/v1/admin/items/{id}/purchase": {"post": {"tags": ["Inventory"], "summary": "Purchase units", "responses": {"200": {"description": "OK"}, "409": {"description": "Not enough stock"}}}},
        "/api/v1/admin/items/{id}/restock": {"post": {"tags": ["Inventory"], "summary": "Restock units", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/cart": {
            "get": {"tags": ["Cart"], "summary": "Show the session cart", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Cart"], "summary": "Empty the cart", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/cart/open": {"post": {"tags": ["Cart"], "summary": "Show the cart drawer", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/cart/close": {"post": {"tags": ["Cart"], "summary": "Hide the cart drawer", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/cart/lines": {"post": {"tags": ["Cart"], "summary": "Add an item to the cart", "responses": {"200": {"description": "OK"}, "404": {"description": "Item not found"}, "409": {"description": "Not enough stock"}}}},
        "/api/v1/cart/lines/{item_id}": {
            "put": {"tags": ["Cart"], "summary": "Set a line quantity", "responses": {"200": {"description": "OK"}, "409": {"description": "Not enough stock"}}},
            "delete": {"tags": ["Cart"], "summary": "Remove a line", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/checkout": {"get": {"tags": ["Checkout"], "summary": "Show the checkout state", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/checkout/begin": {"post": {"tags": ["Checkout"], "summary": "Open checkout", "responses": {"200": {"description": "OK"}, "409": {"description": "Empty cart or wrong step"}}}},
        "/api/v1/checkout/address": {"post": {"tags": ["Checkout"], "summary": "Submit the delivery address", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid address"}, "409": {"description": "Wrong step"}}}},
        "/api/v1/checkout/payment": {"post": {"tags": ["Checkout"], "summary": "Choose a payment method", "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown method"}}}},
        "/api/v1/checkout/back": {"post": {"tags": ["Checkout"], "summary": "Return to the address step", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/checkout/place": {"post": {"tags": ["Checkout"], "summary": "Pay and place the order", "responses": {"200": {"description": "OK"}, "409": {"description": "Out of stock, empty cart or already processing"}, "429": {"description": "Too many attempts"}}}},
        "/api/v1/checkout/cancel": {"post": {"tags": ["Checkout"], "summary": "Close checkout", "responses": {"200": {"description": "OK"}, "409": {"description": "Completed or processing"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Sweet Shop API",
	Description:      "Catalog, session cart and checkout for a small sweet shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
