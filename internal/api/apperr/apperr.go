// Package apperr renders the API's error envelopes. The shapes are part of
// the public contract and are intentionally asymmetric: validation failures
// use {errors: [...]} with no success key, everything else uses
// {error: ..., success: false} except conflicts and route misses, which carry
// their own shapes.
package apperr

import (
	"net/http"

	"github.com/nanafox/simple-books-api/internal/api/httpx"
)

type errorEnvelope struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

type validationEnvelope struct {
	Errors []string `json:"errors"`
}

type conflictEnvelope struct {
	Error string `json:"error"`
}

type routeEnvelope struct {
	Error    string `json:"error"`
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

// NotFound writes a 404 lookup miss. The message carries the raw identifier
// exactly as the client sent it.
func NotFound(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusNotFound, errorEnvelope{Error: message})
}

// BadRequest writes a 400 for a missing structural parameter or unreadable body.
func BadRequest(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusBadRequest, errorEnvelope{Error: message})
}

// Unprocessable writes a 422 with every validation message, in order.
func Unprocessable(w http.ResponseWriter, messages []string) {
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, validationEnvelope{Errors: messages})
}

// Conflict writes a 409 duplicate business-key failure.
func Conflict(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusConflict, conflictEnvelope{Error: message})
}

// Internal writes a generic 500 without leaking store internals.
func Internal(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusInternalServerError, errorEnvelope{Error: message})
}

// RouteNotFound handles any path no route matched.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusNotFound, routeEnvelope{
		Error:    "Route not found",
		Endpoint: r.URL.Path,
		Method:   r.Method,
	})
}
