package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/shubham0328/mini-blog-api/internal/api/handlers/user"
	"github.com/shubham0328/mini-blog-api/internal/auth"
	"github.com/shubham0328/mini-blog-api/internal/core/users"
)

// RegisterUserRoutes registers signup and token endpoints on the router.
// All three are open: they are how callers obtain credentials.
func RegisterUserRoutes(r chi.Router, service users.Service, tokens *auth.TokenService) {
	signupHandler := user.NewSignupHandler(service)
	tokenHandler := user.NewTokenHandler(service, tokens)

	r.Post("/signup/", signupHandler.HandleSignup)
	r.Post("/token/", tokenHandler.HandleObtain)
	r.Post("/token/refresh/", tokenHandler.HandleRefresh)
}
