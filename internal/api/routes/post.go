package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/shubham0328/mini-blog-api/internal/api/handlers/post"
	"github.com/shubham0328/mini-blog-api/internal/api/middleware"
	"github.com/shubham0328/mini-blog-api/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router.
// Reads are open; creation and author-only mutation require authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Get("/posts/", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Post("/posts/", createHandler.HandleCreate)

	r.Get("/posts/{postID}/", getHandler.HandleGet)
	r.With(authMiddleware.RequireAuth).Put("/posts/{postID}/", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postID}/", deleteHandler.HandleDelete)
}
