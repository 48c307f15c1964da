package common

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the canonical error payload.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON writes v as a JSON response.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONData wraps v in the {"data": ...} success envelope.
func JSONData(w http.ResponseWriter, status int, v any) {
	JSON(w, status, map[string]any{"data": v})
}

// JSONError renders an error response using the canonical error shape.
func JSONError(w http.ResponseWriter, status int, code, message string, details any) {
	JSON(w, status, map[string]any{
		"error": ErrorBody{Code: code, Message: message, Details: details},
	})
}

// JSONAppError renders an AppError, falling back to a generic 500 for
// anything else so internals never leak to the caller.
func JSONAppError(w http.ResponseWriter, err error) {
	if app, ok := AsAppError(err); ok {
		JSONError(w, app.HTTPStatus, app.Code, app.Message, app.Details)
		return
	}
	JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
}
