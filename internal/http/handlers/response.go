// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Every endpoint, success or failure, replies with the same JSON envelope so
// clients can branch on one shape:
//
//	{ "success": true,  "data": { ... } }
//	{ "success": false, "error": { "code": "...", "message": "..." } }
//
// Conventions:
//   - Error responses carry a stable, machine-readable `code` (see errors.go)
//     plus a human-readable message; clients branch on the code, never parse
//     the message.
//   - `fail()` centralizes error formatting and ensures 5xx responses are
//     logged with request context for observability.
//   - A failure is not always an HTTP error: an empty candidate pool is
//     reported as success:false with HTTP 200 (a "try later" outcome).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-match-backend/internal/http/middleware"
)

// ErrorBody describes a failed operation inside the response envelope.
type ErrorBody struct {
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"USER_NOT_FOUND"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"user not found, please submit your profile again"`
}

// Response is the envelope returned by every endpoint.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// fail writes a failure envelope with the given HTTP status and aborts the
// request. Server errors (>=500) are logged using the request-scoped logger
// from middleware.
//
// Note that status may legitimately be 200: EMPTY_POOL is a success-shaped
// failure by design of the API contract.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: msg},
	})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success envelope with the given HTTP status and payload.
func ok(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}
