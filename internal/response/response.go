// Package response provides shared JSON response helpers for HTTP handlers.
// Failures always carry a machine-readable code from a closed taxonomy plus a
// user-facing message; internal details are never written to the client.
package response

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes exposed on the wire.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidFile        = "INVALID_FILE"
	CodeUnsupportedType    = "UNSUPPORTED_TYPE"
	CodeTooLarge           = "TOO_LARGE"
	CodeStorageWriteFailed = "STORAGE_WRITE_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorBody is the standard error response body.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes an error response with the given status, taxonomy code and message.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Error: message, Code: code})
}

// BadRequest writes a 400 response with the given taxonomy code.
func BadRequest(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusBadRequest, code, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, CodeNotFound, message)
}

// InternalError writes a 500 response with the given taxonomy code.
func InternalError(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusInternalServerError, code, message)
}
