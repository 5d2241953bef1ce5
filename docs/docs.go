// Package docs Shrine Functions API.
//
// Вызываемые функции мобильного приложения для записи посещений святилищ:
// определение ближайшего святилища по GPS, генерация подписей для соцсетей
// и (пока не реализованная) публикация.
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
        "/detectShrine": {
            "post": {
                "description": "Ищет ближайшее святилище в радиусе 1000 м от координаты пользователя. Если ничего не найдено, все поля результата равны null.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Shrines"],
                "summary": "Ближайшее святилище",
                "parameters": [
                    {
                        "description": "Координаты",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"$ref": "#/definitions/dto.DetectShrineRequest"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "result": {"$ref": "#/definitions/dto.DetectShrineResponse"}
                            }
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/generateCaptions": {
            "post": {
                "description": "Собирает подписи для Instagram, X и Threads. Подпись для X обрезается до 280 символов.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Captions"],
                "summary": "Подписи для соцсетей",
                "parameters": [
                    {
                        "description": "Текст поста",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"$ref": "#/definitions/dto.GenerateCaptionsRequest"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "result": {"$ref": "#/definitions/domain.Captions"}
                            }
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/postToSNS": {
            "post": {
                "description": "Всегда возвращает posted=false для всех площадок и ошибку not-implemented.",
                "produces": ["application/json"],
                "tags": ["SNS"],
                "summary": "Публикация в соцсети (не реализована)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "result": {"$ref": "#/definitions/domain.PostResult"}
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка состояния",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "dto.DetectShrineRequest": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "text": {"type": "string"}
            }
        },
        "dto.DetectShrineResponse": {
            "type": "object",
            "properties": {
                "shrineId": {"type": "string", "x-nullable": true},
                "name": {"type": "string", "x-nullable": true},
                "distance": {"type": "integer", "x-nullable": true}
            }
        },
        "dto.GenerateCaptionsRequest": {
            "type": "object",
            "properties": {
                "shrineName": {"type": "string"},
                "text": {"type": "string"},
                "metadata": {
                    "type": "object",
                    "properties": {
                        "goshuin": {"type": "boolean"}
                    }
                }
            }
        },
        "domain.Captions": {
            "type": "object",
            "properties": {
                "instagramCaption": {"type": "string"},
                "xCaption": {"type": "string"},
                "threadsCaption": {"type": "string"}
            }
        },
        "domain.PostResult": {
            "type": "object",
            "properties": {
                "posted": {
                    "type": "object",
                    "properties": {
                        "x": {"type": "boolean"},
                        "instagram": {"type": "boolean"},
                        "threads": {"type": "boolean"}
                    }
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "code": {"type": "string"},
                            "message": {"type": "string"}
                        }
                    }
                }
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "status": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Shrine Functions API",
	Description:      "Callable functions for the shrine visit log app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
