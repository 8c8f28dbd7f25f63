// Package swagger holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs/swagger --outputTypes go
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog/compare": {
            "get": {
                "parameters": [
                    {
                        "name": "keywords",
                        "in": "query",
                        "required": true,
                        "description": "Search keywords",
                        "type": "string"
                    },
                    {
                        "name": "max_results",
                        "in": "query",
                        "required": false,
                        "description": "1-25 per catalog, default 10",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CompareResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    }
                },
                "summary": "Compare prices across Amazon and Walmart",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/catalog/search": {
            "get": {
                "parameters": [
                    {
                        "name": "source",
                        "in": "query",
                        "required": true,
                        "description": "amazon | walmart",
                        "type": "string"
                    },
                    {
                        "name": "keywords",
                        "in": "query",
                        "required": true,
                        "description": "Search keywords",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Amazon SearchIndex or Walmart category id",
                        "type": "string"
                    },
                    {
                        "name": "max_results",
                        "in": "query",
                        "required": false,
                        "description": "1-25, default 10",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/SearchResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    }
                },
                "summary": "Search a product catalog",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/catalog/walmart/stores/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Walmart item id",
                        "type": "string"
                    },
                    {
                        "name": "zip_code",
                        "in": "query",
                        "required": true,
                        "description": "US ZIP code",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/StoreResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    }
                },
                "summary": "Walmart store availability",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/catalog/{source}/product/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "source",
                        "in": "path",
                        "required": true,
                        "description": "amazon | walmart",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ASIN or Walmart item id",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ProductDetailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/CatalogErrorResponse"
                        }
                    }
                },
                "summary": "Get a catalog product",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/item": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Item to create",
                        "schema": {
                            "$ref": "#/definitions/ItemRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "Create item",
                "tags": [
                    "items"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/item/{id}": {
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Item ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "Delete item",
                "tags": [
                    "items"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Item ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "Get item",
                "tags": [
                    "items"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Item ID",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Replacement fields",
                        "schema": {
                            "$ref": "#/definitions/ItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "Update item",
                "tags": [
                    "items"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/items": {
            "get": {
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size (max 200)",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Items to skip",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListItemsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "List items",
                "tags": [
                    "items"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/items/food": {
            "get": {
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Substring of name, notes or brand",
                        "type": "string"
                    },
                    {
                        "name": "tab",
                        "in": "query",
                        "required": false,
                        "description": "all | expired | a food type",
                        "type": "string"
                    },
                    {
                        "name": "tag",
                        "in": "query",
                        "required": false,
                        "description": "Dietary tag",
                        "type": "string"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "name | weight-asc | weight-desc | price-asc | price-desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/FoodViewResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "Food view",
                "tags": [
                    "views"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/items/gear": {
            "get": {
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Substring of name, notes or brand",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Category tab; 'all' or empty for every category",
                        "type": "string"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "name | weight-asc | weight-desc | price-asc | price-desc",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/GearViewResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                },
                "summary": "Gear view",
                "tags": [
                    "views"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/recommendations/gear": {
            "post": {
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Trip parameters",
                        "schema": {
                            "$ref": "#/definitions/GearRecommendationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/GearRecommendationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/RecommendationErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/RecommendationErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/RecommendationErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/RecommendationErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/RecommendationErrorResponse"
                        }
                    }
                },
                "summary": "Recommend gear for a trip",
                "tags": [
                    "recommendations"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/trip/plan": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Trip dates",
                        "schema": {
                            "$ref": "#/definitions/CreatePlanRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/PlanResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Create meal plan",
                "tags": [
                    "trip"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/trip/plan/{id}": {
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Discard meal plan",
                "tags": [
                    "trip"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/PlanResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Get meal plan",
                "tags": [
                    "trip"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/trip/plan/{id}/foods": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    },
                    {
                        "name": "slot",
                        "in": "query",
                        "required": true,
                        "description": "breakfast | lunch | dinner | snack",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/FoodOption"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Foods for a meal slot",
                "tags": [
                    "trip"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/trip/plan/{id}/meals": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Day, slot and item",
                        "schema": {
                            "$ref": "#/definitions/MealRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/PlanResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Add food to meal slot",
                "tags": [
                    "trip"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Day, slot and item",
                        "schema": {
                            "$ref": "#/definitions/MealRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/PlanResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Remove food from meal slot",
                "tags": [
                    "trip"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/trip/plan/{id}/nutrition": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    },
                    {
                        "name": "date",
                        "in": "query",
                        "required": false,
                        "description": "Restrict to one day (YYYY-MM-DD)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/NutritionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Meal plan nutrition",
                "tags": [
                    "trip"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/trip/plan/{id}/summary": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Plan ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Selected gear",
                        "schema": {
                            "$ref": "#/definitions/SummaryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/TripErrorResponse"
                        }
                    }
                },
                "summary": "Trip summary",
                "tags": [
                    "trip"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "BrandRef": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Big Agnes"
                }
            }
        },
        "CatalogErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "catalog source not configured: amazon"
                }
            }
        },
        "CategoryName": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Shelter"
                }
            }
        },
        "CategoryRef": {
            "type": "object",
            "properties": {
                "category": {
                    "$ref": "#/definitions/CategoryName"
                }
            }
        },
        "CompareResponse": {
            "type": "object",
            "properties": {
                "amazon": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ProductResponse"
                    }
                },
                "walmart": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ProductResponse"
                    }
                },
                "comparison": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ComparisonResponse"
                    }
                }
            }
        },
        "ComparisonResponse": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string",
                    "example": "Sawyer Squeeze Water Filter"
                },
                "amazon_id": {
                    "type": "string",
                    "example": "B00FA2RLX2"
                },
                "amazon_price": {
                    "type": "number",
                    "example": 36
                },
                "amazon_url": {
                    "type": "string"
                },
                "walmart_id": {
                    "type": "string",
                    "example": "21954131"
                },
                "walmart_price": {
                    "type": "number",
                    "example": 31.5
                },
                "walmart_url": {
                    "type": "string"
                },
                "price_difference": {
                    "type": "number",
                    "example": 4.5
                },
                "cheaper": {
                    "type": "string",
                    "example": "walmart"
                }
            }
        },
        "CreatePlanRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Lost Coast"
                },
                "start_date": {
                    "type": "string",
                    "example": "2025-09-10"
                },
                "end_date": {
                    "type": "string",
                    "example": "2025-09-12"
                }
            },
            "required": [
                "start_date",
                "end_date"
            ]
        },
        "DayNutritionResponse": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2025-09-10"
                },
                "nutrition": {
                    "$ref": "#/definitions/TripNutrition"
                }
            }
        },
        "DayResponse": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2025-09-10"
                },
                "meals": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "item not found"
                }
            }
        },
        "FoodGroupResponse": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string",
                    "example": "dinner"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/FoodItemResponse"
                    }
                }
            }
        },
        "FoodItemResponse": {
            "type": "object",
            "properties": {
                "expiration_state": {
                    "type": "string",
                    "example": "expiring_soon"
                }
            }
        },
        "FoodOption": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 42
                },
                "name": {
                    "type": "string",
                    "example": "Chili Mac"
                },
                "food_type": {
                    "type": "string",
                    "example": "dinner"
                },
                "calories_per_serving": {
                    "type": "number",
                    "example": 600
                },
                "expiration_date": {
                    "type": "string",
                    "example": "2026-01-31"
                },
                "expiration_state": {
                    "type": "string",
                    "example": "fresh"
                }
            }
        },
        "FoodViewResponse": {
            "type": "object",
            "properties": {
                "groups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/FoodGroupResponse"
                    }
                },
                "nutrition": {
                    "$ref": "#/definitions/NutritionTotals"
                },
                "total_weight_grams": {
                    "type": "number",
                    "example": 3100
                },
                "total_price": {
                    "type": "number",
                    "example": 84.2
                },
                "expired_count": {
                    "type": "integer",
                    "example": 1
                },
                "expiring_soon_count": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "GearRecommendationRequest": {
            "type": "object",
            "properties": {
                "trip_type": {
                    "type": "string",
                    "example": "backpacking"
                },
                "duration": {
                    "type": "string",
                    "example": "3 days"
                },
                "season": {
                    "type": "string",
                    "example": "fall"
                },
                "location": {
                    "type": "string",
                    "example": "High Sierra"
                },
                "experience_level": {
                    "type": "string",
                    "example": "intermediate"
                },
                "budget": {
                    "type": "string",
                    "example": "moderate"
                }
            },
            "required": [
                "trip_type",
                "duration",
                "season"
            ]
        },
        "GearRecommendationResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RecommendationCategory"
                    }
                },
                "item_count": {
                    "type": "integer",
                    "example": 9
                },
                "inventory": {
                    "$ref": "#/definitions/InventorySummary"
                }
            }
        },
        "GearViewResponse": {
            "type": "object",
            "properties": {
                "groups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ItemGroupResponse"
                    }
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "count": {
                    "type": "integer",
                    "example": 14
                },
                "total_weight_grams": {
                    "type": "number",
                    "example": 8420.5
                },
                "total_price": {
                    "type": "number",
                    "example": 1890.4
                }
            }
        },
        "InventoryCategory": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Shelter"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "weight_grams": {
                    "type": "number",
                    "example": 1500
                }
            }
        },
        "InventorySummary": {
            "type": "object",
            "properties": {
                "gear_count": {
                    "type": "integer",
                    "example": 14
                },
                "food_count": {
                    "type": "integer",
                    "example": 6
                },
                "total_weight_grams": {
                    "type": "number",
                    "example": 8200
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/InventoryCategory"
                    }
                }
            }
        },
        "ItemGroupResponse": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string",
                    "example": "Shelter"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ItemResponse"
                    }
                }
            }
        },
        "ItemRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Copper Spur UL2"
                },
                "is_food": {
                    "type": "boolean",
                    "example": false
                },
                "weight": {
                    "type": "number",
                    "example": 1.36
                },
                "unit": {
                    "type": "string",
                    "example": "kg"
                },
                "price": {
                    "type": "number",
                    "example": 449.95
                },
                "category": {
                    "$ref": "#/definitions/CategoryRef"
                },
                "brand": {
                    "$ref": "#/definitions/BrandRef"
                },
                "notes": {
                    "type": "string"
                },
                "product_url": {
                    "type": "string"
                },
                "consumable": {
                    "type": "boolean"
                },
                "wishlist": {
                    "type": "boolean"
                },
                "food_type": {
                    "type": "string",
                    "example": "dinner"
                },
                "calories_per_serving": {
                    "type": "number",
                    "example": 550
                },
                "expiration_date": {
                    "type": "string",
                    "example": "2026-03-01"
                },
                "nutrition_info": {
                    "$ref": "#/definitions/NutritionInfo"
                },
                "dietary_tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "preparation_time_minutes": {
                    "type": "integer",
                    "example": 10
                }
            },
            "required": [
                "name",
                "dietary_tags"
            ]
        },
        "ItemResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 42
                },
                "name": {
                    "type": "string",
                    "example": "Copper Spur UL2"
                },
                "is_food": {
                    "type": "boolean"
                },
                "weight": {
                    "type": "number",
                    "example": 1.36
                },
                "unit": {
                    "type": "string",
                    "example": "kg"
                },
                "price": {
                    "type": "number",
                    "example": 449.95
                },
                "category": {
                    "$ref": "#/definitions/CategoryRef"
                },
                "brand": {
                    "$ref": "#/definitions/BrandRef"
                },
                "notes": {
                    "type": "string"
                },
                "product_url": {
                    "type": "string"
                },
                "consumable": {
                    "type": "boolean"
                },
                "wishlist": {
                    "type": "boolean"
                },
                "food_type": {
                    "type": "string"
                },
                "calories_per_serving": {
                    "type": "number"
                },
                "expiration_date": {
                    "type": "string",
                    "example": "2026-03-01"
                },
                "nutrition_info": {
                    "$ref": "#/definitions/NutritionInfo"
                },
                "dietary_tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "preparation_time_minutes": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time",
                    "example": "2024-01-15T10:30:00Z"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time",
                    "example": "2024-01-15T10:30:00Z"
                }
            }
        },
        "ListItemsResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ItemResponse"
                    }
                },
                "total": {
                    "type": "integer",
                    "example": 120
                },
                "limit": {
                    "type": "integer",
                    "example": 50
                },
                "offset": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "MealRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2025-09-10"
                },
                "slot": {
                    "type": "string",
                    "example": "dinner"
                },
                "item_id": {
                    "type": "integer",
                    "example": 42
                }
            },
            "required": [
                "date",
                "slot",
                "item_id"
            ]
        },
        "NutritionInfo": {
            "type": "object",
            "properties": {
                "protein": {
                    "type": "number",
                    "example": 12
                },
                "carbs": {
                    "type": "number",
                    "example": 40
                },
                "fat": {
                    "type": "number",
                    "example": 9
                }
            }
        },
        "NutritionResponse": {
            "type": "object",
            "properties": {
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DayNutritionResponse"
                    }
                },
                "total": {
                    "$ref": "#/definitions/TripNutrition"
                }
            }
        },
        "NutritionTotals": {
            "type": "object",
            "properties": {
                "calories": {
                    "type": "number",
                    "example": 2150
                },
                "protein": {
                    "type": "number",
                    "example": 85
                },
                "carbs": {
                    "type": "number",
                    "example": 260
                },
                "fat": {
                    "type": "number",
                    "example": 70
                }
            }
        },
        "PlanResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "5f0c1d2e-7a43-4a57-9a83-0d5f3ef6c1a2"
                },
                "name": {
                    "type": "string",
                    "example": "Lost Coast"
                },
                "start_date": {
                    "type": "string",
                    "example": "2025-09-10"
                },
                "end_date": {
                    "type": "string",
                    "example": "2025-09-12"
                },
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/DayResponse"
                    }
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "ProductDetailResponse": {
            "type": "object",
            "properties": {
                "product": {
                    "$ref": "#/definitions/ProductResponse"
                },
                "prefill": {
                    "$ref": "#/definitions/ItemRequest"
                }
            }
        },
        "ProductResponse": {
            "type": "object",
            "properties": {
                "source": {
                    "type": "string",
                    "example": "amazon"
                },
                "id": {
                    "type": "string",
                    "example": "B07XJ8C8F5"
                },
                "title": {
                    "type": "string",
                    "example": "Copper Spur HV UL2"
                },
                "brand": {
                    "type": "string",
                    "example": "Big Agnes"
                },
                "url": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "price": {
                    "type": "number",
                    "example": 449.95
                },
                "currency": {
                    "type": "string",
                    "example": "USD"
                },
                "rating": {
                    "type": "number",
                    "example": 4.6
                },
                "reviews": {
                    "type": "integer",
                    "example": 312
                },
                "category": {
                    "type": "string",
                    "example": "Sports & Outdoors/Camping/Tents"
                },
                "prime": {
                    "type": "boolean",
                    "example": true
                },
                "in_stock": {
                    "type": "boolean",
                    "example": true
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "weight": {
                    "type": "number",
                    "example": 3.2
                },
                "weight_unit": {
                    "type": "string",
                    "example": "lb"
                }
            }
        },
        "RecommendationCategory": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Sleep System"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RecommendedItem"
                    }
                }
            }
        },
        "RecommendationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "recommendations not configured"
                }
            }
        },
        "RecommendedItem": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Down quilt"
                },
                "description": {
                    "type": "string",
                    "example": "20F rated 850 fill quilt"
                },
                "category": {
                    "type": "string",
                    "example": "Sleep System"
                },
                "estimated_price": {
                    "type": "number",
                    "example": 320
                },
                "weight": {
                    "type": "number",
                    "example": 620
                },
                "importance": {
                    "type": "string",
                    "example": "essential"
                },
                "reason": {
                    "type": "string",
                    "example": "Nights drop below freezing in fall"
                }
            }
        },
        "SearchResponse": {
            "type": "object",
            "properties": {
                "source": {
                    "type": "string",
                    "example": "walmart"
                },
                "products": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ProductResponse"
                    }
                },
                "count": {
                    "type": "integer",
                    "example": 10
                }
            }
        },
        "StoreResponse": {
            "type": "object",
            "properties": {
                "no": {
                    "type": "integer",
                    "example": 2516
                },
                "name": {
                    "type": "string",
                    "example": "Walmart Supercenter"
                },
                "address": {
                    "type": "string",
                    "example": "1025 Rainier Ave S"
                },
                "city": {
                    "type": "string",
                    "example": "Renton"
                },
                "state": {
                    "type": "string",
                    "example": "WA"
                },
                "zip": {
                    "type": "string",
                    "example": "98055"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "SummaryRequest": {
            "type": "object",
            "properties": {
                "gear_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "SummaryResponse": {
            "type": "object",
            "properties": {
                "gear_count": {
                    "type": "integer",
                    "example": 12
                },
                "gear_weight_grams": {
                    "type": "number",
                    "example": 7300
                },
                "gear_cost": {
                    "type": "number",
                    "example": 1450
                },
                "food_count": {
                    "type": "integer",
                    "example": 9
                },
                "food_weight_grams": {
                    "type": "number",
                    "example": 2100
                },
                "food_cost": {
                    "type": "number",
                    "example": 96.5
                },
                "food_calories": {
                    "type": "number",
                    "example": 7800
                },
                "total_weight_grams": {
                    "type": "number",
                    "example": 9400
                },
                "total_cost": {
                    "type": "number",
                    "example": 1546.5
                }
            }
        },
        "TripErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "meal plan not found"
                }
            }
        },
        "TripNutrition": {
            "type": "object",
            "properties": {
                "calories": {
                    "type": "number",
                    "example": 2150
                },
                "protein": {
                    "type": "number",
                    "example": 85
                },
                "carbs": {
                    "type": "number",
                    "example": 260
                },
                "fat": {
                    "type": "number",
                    "example": 70
                }
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Packstack API",
	Description:      "Outdoor gear inventory, trip meal planning, catalog search and gear recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
