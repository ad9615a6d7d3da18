// Package docs регистрирует описание API в формате Swagger 2.0 для /docs.
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
        "/api/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Список услуг",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Номер страницы", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Размер страницы (1..100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Строка поиска", "name": "search", "in": "query"},
                    {"enum": ["id", "name", "price", "duration_minutes", "created_at"], "type": "string", "description": "Столбец сортировки", "name": "sortBy", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Направление сортировки", "name": "sortOrder", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceList"}},
                    "400": {"description": "Некорректные параметры", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка хранилища", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Добавить услугу",
                "parameters": [
                    {"description": "Данные услуги", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ServiceRecord"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ServiceItem"}},
                    "400": {"description": "Ошибка валидации или хранилища", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/services/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Статистика услуг",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceStats"}},
                    "500": {"description": "Ошибка хранилища", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/services/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Получить услугу",
                "parameters": [{"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceItem"}},
                    "400": {"description": "Некорректный ID", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Услуга не найдена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка хранилища", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Обновить услугу",
                "parameters": [
                    {"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true},
                    {"description": "Новые данные услуги", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ServiceRecord"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceItem"}},
                    "400": {"description": "Некорректный ID или тело запроса", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Услуга не найдена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка хранилища", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Удалить услугу",
                "parameters": [{"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceDeleted"}},
                    "400": {"description": "Некорректный ID", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Услуга не найдена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка хранилища", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Список товаров",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"enum": ["id", "name", "price", "updated_at"], "type": "string", "name": "sortBy", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "name": "sortOrder", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProductList"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Добавить товар",
                "parameters": [
                    {"description": "Данные товара", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProductRecord"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ProductItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Получить товар",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProductItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Обновить товар",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProductRecord"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProductItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Удалить товар",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProductDeleted"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка работоспособности",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}
                }
            }
        }
    },
    "definitions": {
        "health.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2025-01-02T03:04:05.000Z"},
                "version": {"type": "string", "example": "1.1.0"}
            }
        },
        "models.Pagination": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "itemsPerPage": {"type": "integer"},
                "hasNextPage": {"type": "boolean"},
                "hasPrevPage": {"type": "boolean"}
            }
        },
        "models.Sort": {
            "type": "object",
            "properties": {
                "sortBy": {"type": "string"},
                "sortOrder": {"type": "string"}
            }
        },
        "models.Service": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "duration_minutes": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "models.ServiceRecord": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "duration_minutes": {"type": "integer", "minimum": 1}
            }
        },
        "models.ServiceStats": {
            "type": "object",
            "properties": {
                "totalServices": {"type": "integer"},
                "averagePrice": {"type": "number"},
                "priceRange": {"$ref": "#/definitions/models.PriceRange"}
            }
        },
        "models.PriceRange": {
            "type": "object",
            "properties": {
                "min": {"type": "number"},
                "max": {"type": "number"}
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.ProductRecord": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number", "minimum": 0}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Service not found"}
            }
        },
        "response.ServiceList": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "services": {"type": "array", "items": {"$ref": "#/definitions/models.Service"}},
                "pagination": {"$ref": "#/definitions/models.Pagination"},
                "search": {"type": "string"},
                "sort": {"$ref": "#/definitions/models.Sort"}
            }
        },
        "response.ServiceItem": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Service added successfully"},
                "service": {"$ref": "#/definitions/models.Service"}
            }
        },
        "response.ServiceDeleted": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Service deleted successfully"},
                "deletedService": {"$ref": "#/definitions/models.Service"}
            }
        },
        "response.ServiceStats": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "stats": {"$ref": "#/definitions/models.ServiceStats"}
            }
        },
        "response.ProductList": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
                "pagination": {"$ref": "#/definitions/models.Pagination"},
                "search": {"type": "string"},
                "sort": {"$ref": "#/definitions/models.Sort"}
            }
        },
        "response.ProductItem": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Product added successfully"},
                "product": {"$ref": "#/definitions/models.Product"}
            }
        },
        "response.ProductDeleted": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Product deleted successfully"},
                "deletedProduct": {"$ref": "#/definitions/models.Product"}
            }
        }
    }
}`

// SwaggerInfo метаданные API, которые можно переопределить при запуске.
var SwaggerInfo = &swag.Spec{
	Version:          "1.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shoesclean API",
	Description:      "Каталог услуг чистки обуви и товаров: CRUD, поиск, пагинация, статистика.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
