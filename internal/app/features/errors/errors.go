// internal/app/features/errors/errors.go
//
// JSON error responses for the API surface. Handlers import this
// package as apierr. Internal detail is logged, never sent to the
// client; the body carries only a short human-readable message.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type payload struct {
	Error string `json:"error"`
}

// JSON writes a JSON error body with the given status.
func JSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload{Error: msg})
}

// BadRequest maps validation failures to 400.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, msg)
}

// NotFound maps missing documents to 404.
func NotFound(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusNotFound, msg)
}

// Conflict maps duplicates and dependency-blocked deletes to 409.
func Conflict(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusConflict, msg)
}

// Internal logs the underlying error and writes a generic 500 body.
func Internal(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	logger.Error(op, zap.Error(err))
	JSON(w, http.StatusInternalServerError, "internal error")
}
