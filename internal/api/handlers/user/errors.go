package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/shubham0328/mini-blog-api/internal/auth"
	"github.com/shubham0328/mini-blog-api/internal/core/users"
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
	var valErr *users.ValidationError

	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest",
			"username already exists", "username")

	case errors.Is(err, users.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Unauthorized",
			"Invalid username or password")

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenType):
		writeError(w, http.StatusUnauthorized, "Unauthorized",
			"Invalid or expired token")

	case errors.As(err, &valErr):
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest",
			valErr.Message, valErr.Field)

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in user handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
