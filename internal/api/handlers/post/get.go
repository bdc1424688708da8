package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shubham0328/mini-blog-api/internal/core/posts"
)

// GetHandler handles single-post fetch requests
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/posts/{postID}/
// Open endpoint; returns the post with its nested comments.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}

// parsePostID extracts and validates the {postID} path parameter.
// A non-numeric identifier cannot address any post, so it reads as 404
// rather than 400.
func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return 0, false
	}
	return id, true
}
