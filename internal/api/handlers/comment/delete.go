package comment

import (
	"net/http"

	"github.com/shubham0328/mini-blog-api/internal/api/middleware"
	"github.com/shubham0328/mini-blog-api/internal/core/comments"
)

// DeleteHandler handles comment deletion requests
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new handler for deleting comments
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /api/comments/{commentID}/
// Author-only.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCommentID(w, r)
	if !ok {
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
