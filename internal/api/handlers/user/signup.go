package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shubham0328/mini-blog-api/internal/core/users"
)

// SignupHandler handles account creation requests
type SignupHandler struct {
	service users.Service
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(service users.Service) *SignupHandler {
	return &SignupHandler{service: service}
}

// signupResponse deliberately echoes no credential material back
type signupResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// HandleSignup handles POST /api/signup/
// Open endpoint: creating an account is how callers obtain credentials.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent abuse
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.Signup(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(signupResponse{
		Message: "User created successfully",
		ID:      created.ID,
	}); err != nil {
		log.Printf("Failed to encode signup response: %v", err)
	}
}
