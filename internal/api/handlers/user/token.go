package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shubham0328/mini-blog-api/internal/auth"
	"github.com/shubham0328/mini-blog-api/internal/core/users"
)

// TokenHandler issues and refreshes bearer token pairs
type TokenHandler struct {
	service users.Service
	tokens  *auth.TokenService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(service users.Service, tokens *auth.TokenService) *TokenHandler {
	return &TokenHandler{
		service: service,
		tokens:  tokens,
	}
}

type obtainTokenInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshTokenInput struct {
	Refresh string `json:"refresh"`
}

type refreshTokenOutput struct {
	Access string `json:"access"`
}

// HandleObtain handles POST /api/token/
// Verifies a username/password pair and returns an access/refresh pair.
func (h *TokenHandler) HandleObtain(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input obtainTokenInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pair); err != nil {
		log.Printf("Failed to encode token response: %v", err)
	}
}

// HandleRefresh handles POST /api/token/refresh/
// Exchanges a valid refresh token for a new access token.
func (h *TokenHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input refreshTokenInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if input.Refresh == "" {
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest",
			"refresh token is required", "refresh")
		return
	}

	access, err := h.tokens.Refresh(input.Refresh)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(refreshTokenOutput{Access: access}); err != nil {
		log.Printf("Failed to encode refresh response: %v", err)
	}
}
