package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/shubham0328/mini-blog-api/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	writeFieldError(w, statusCode, errorType, message, "")
}

// writeFieldError writes a JSON error response carrying the failing field
func writeFieldError(w http.ResponseWriter, statusCode int, errorType, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
		Field:   field,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *posts.ValidationError

	switch {
	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	case errors.Is(err, posts.ErrNotAuthor):
		writeError(w, http.StatusForbidden, "Forbidden",
			"You are not the author of this post")

	case errors.As(err, &valErr):
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest",
			valErr.Message, valErr.Field)

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
