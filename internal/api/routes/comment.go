package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/shubham0328/mini-blog-api/internal/api/handlers/comment"
	"github.com/shubham0328/mini-blog-api/internal/api/middleware"
	"github.com/shubham0328/mini-blog-api/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the router.
// All comment writes require authentication; there is no standalone comment
// read endpoint — comments are served nested under their post.
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateHandler(service)
	updateHandler := comment.NewUpdateHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/comments/", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/comments/{commentID}/", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/comments/{commentID}/", deleteHandler.HandleDelete)
}
