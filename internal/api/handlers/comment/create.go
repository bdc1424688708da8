package comment

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shubham0328/mini-blog-api/internal/api/middleware"
	"github.com/shubham0328/mini-blog-api/internal/core/comments"
)

// CreateHandler handles comment creation requests
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new handler for creating comments
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/posts/{postID}/comments/
// Attaches a comment to the addressed post; 404 if the post is absent.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}
	req.PostID = postID
	req.AuthorID = userID

	view, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode comment creation response: %v", err)
	}
}
