// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init` after changing handler annotations.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email or username",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/hotel": {
            "get": {
                "tags": ["hotel"],
                "summary": "List active hotels",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["hotel"],
                "summary": "Register a hotel",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.HotelRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/hotel/search": {
            "post": {
                "tags": ["hotel"],
                "summary": "Fuzzy search over hotel name and address",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.HotelSearchRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/hotel/managed": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["hotel"],
                "summary": "Active hotels managed by the caller",
                "parameters": [{"type": "integer", "name": "adminId", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/hotel/{id}": {
            "get": {
                "tags": ["hotel"],
                "summary": "Hotel detail with its rooms",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["hotel"],
                "summary": "Update the fields of a hotel",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.HotelUpdateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["hotel"],
                "summary": "Delete a hotel with its rooms and extra services",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/user/editProfile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Edit the caller's profile",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/user/updatePassword": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Change the caller's password",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PasswordUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/user/delete/me": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Delete the caller's account",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/user/getUsers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Page through active users",
                "parameters": [
                    {"type": "integer", "name": "desde", "in": "query"},
                    {"type": "integer", "name": "limite", "in": "query"},
                    {"type": "string", "name": "username", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/user/editUsers": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Edit another user, found by uid or username",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserAdminUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/user/delete/admin": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Delete a user, found by uid or username",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserLookupRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/available/{idHotel}": {
            "get": {
                "tags": ["room"],
                "summary": "List the rooms of a hotel",
                "parameters": [
                    {"type": "integer", "name": "idHotel", "in": "path", "required": true},
                    {"type": "string", "name": "hotelName", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/registerAdmin": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["room"],
                "summary": "Register a room in any hotel",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RoomRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/registerManager": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["room"],
                "summary": "Register a room in a hotel managed by the caller",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RoomRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/adminUpdate/{roomId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["room"],
                "summary": "Edit any room",
                "parameters": [
                    {"type": "integer", "name": "roomId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RoomUpdateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/managerUpdate/{roomId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["room"],
                "summary": "Edit a room of a hotel managed by the caller",
                "parameters": [
                    {"type": "integer", "name": "roomId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RoomUpdateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/admin/{roomId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["room"],
                "summary": "Delete any room, reassigning or cancelling its active reservations",
                "parameters": [{"type": "integer", "name": "roomId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/manager/{roomId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["room"],
                "summary": "Delete a room of a hotel managed by the caller",
                "parameters": [{"type": "integer", "name": "roomId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/{roomId}/availability": {
            "get": {
                "tags": ["room"],
                "summary": "Whether a room is free for a stay",
                "parameters": [
                    {"type": "integer", "name": "roomId", "in": "path", "required": true},
                    {"type": "string", "name": "entry", "in": "query", "required": true},
                    {"type": "string", "name": "departure", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/room/{roomId}/avatar": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "tags": ["room"],
                "summary": "Upload the room picture",
                "parameters": [
                    {"type": "integer", "name": "roomId", "in": "path", "required": true},
                    {"type": "file", "name": "avatar", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/reservation/Reserve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservation"],
                "summary": "Book a room",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReservationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/reservation/Cancel/{reservationId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservation"],
                "summary": "Cancel one of the caller's active reservations",
                "parameters": [{"type": "integer", "name": "reservationId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/reservation/my-reservations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservation"],
                "summary": "Active reservations of the caller",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/reservation/user-reservations/{identifier}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservation"],
                "summary": "Every reservation of a user",
                "parameters": [{"type": "string", "name": "identifier", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/reservation/admin/hotel-reservations/{identifier}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservation"],
                "summary": "Reservations of a user in the hotels managed by the caller",
                "parameters": [{"type": "string", "name": "identifier", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/extraServices/{hotelId}": {
            "get": {
                "tags": ["extraServices"],
                "summary": "List the extra services of a hotel",
                "parameters": [{"type": "integer", "name": "hotelId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["extraServices"],
                "summary": "Add an extra service to a hotel",
                "parameters": [
                    {"type": "integer", "name": "hotelId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ExtraServiceRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/extraServices/{hotelId}/{extraServiceId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["extraServices"],
                "summary": "Edit an extra service",
                "parameters": [
                    {"type": "integer", "name": "hotelId", "in": "path", "required": true},
                    {"type": "integer", "name": "extraServiceId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ExtraServiceRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["extraServices"],
                "summary": "Remove an extra service",
                "parameters": [
                    {"type": "integer", "name": "hotelId", "in": "path", "required": true},
                    {"type": "integer", "name": "extraServiceId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "errorCode": {"type": "string"},
                "data": {}
            }
        },
        "dto.LoginInput": {
            "type": "object",
            "required": ["identifier", "password"],
            "properties": {"identifier": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.HotelRequest": {
            "type": "object",
            "required": ["name", "address", "qualification", "category", "admin"],
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "qualification": {"type": "integer", "minimum": 1, "maximum": 5},
                "category": {"type": "string"},
                "amenities": {"type": "array", "items": {"type": "string"}},
                "admin": {"type": "integer"}
            }
        },
        "dto.HotelUpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "qualification": {"type": "integer", "minimum": 1, "maximum": 5},
                "category": {"type": "string"},
                "amenities": {"type": "array", "items": {"type": "string"}},
                "admin": {"type": "integer"},
                "status": {"type": "boolean"}
            }
        },
        "dto.ProfileUpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "surname": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "dto.UserAdminUpdateRequest": {
            "type": "object",
            "properties": {
                "uid": {"type": "integer"},
                "username": {"type": "string"},
                "newUsername": {"type": "string"},
                "name": {"type": "string"},
                "surname": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["USER_ROLE", "HOTEL_ADMIN_ROLE"]},
                "status": {"type": "boolean"}
            }
        },
        "dto.PasswordUpdateRequest": {
            "type": "object",
            "required": ["currentPassword", "newPassword"],
            "properties": {"currentPassword": {"type": "string"}, "newPassword": {"type": "string"}}
        },
        "dto.UserLookupRequest": {
            "type": "object",
            "properties": {"uid": {"type": "integer"}, "username": {"type": "string"}}
        },
        "dto.HotelSearchRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "qualification": {"type": "integer"},
                "category": {"type": "string"}
            }
        },
        "dto.RoomRequest": {
            "type": "object",
            "required": ["hotelId", "numeroCuarto", "tipo", "capacidad", "precio"],
            "properties": {
                "hotelId": {"type": "integer"},
                "numeroCuarto": {"type": "integer"},
                "tipo": {"type": "string", "enum": ["simple", "doble", "suite", "familiar", "lujo"]},
                "capacidad": {"type": "integer"},
                "precio": {"type": "number"}
            }
        },
        "dto.RoomUpdateRequest": {
            "type": "object",
            "properties": {
                "numeroCuarto": {"type": "integer"},
                "tipo": {"type": "string", "enum": ["simple", "doble", "suite", "familiar", "lujo"]},
                "capacidad": {"type": "integer"},
                "precio": {"type": "number"}
            }
        },
        "dto.ReservationRequest": {
            "type": "object",
            "required": ["roomId", "dateEntry", "departureDate", "cardNumber", "CVV", "expired"],
            "properties": {
                "roomId": {"type": "integer"},
                "dateEntry": {"type": "string", "example": "2025-03-01"},
                "departureDate": {"type": "string", "example": "2025-03-04"},
                "cardNumber": {"type": "string"},
                "CVV": {"type": "string"},
                "expired": {"type": "string", "example": "12/27"},
                "extraServices": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "dto.ExtraServiceRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "cost": {"type": "number"},
                "description": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/casaMiaManagement/v1",
	Schemes:          []string{},
	Title:            "Casa Mia Management API",
	Description:      "Hotel, room and reservation management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
