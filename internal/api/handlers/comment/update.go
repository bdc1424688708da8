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

// UpdateHandler handles comment update requests
type UpdateHandler struct {
	service comments.Service
}

// NewUpdateHandler creates a new handler for updating comments
func NewUpdateHandler(service comments.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate handles PUT /api/comments/{commentID}/
// Partial update semantics; author-only.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCommentID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	view, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode comment update response: %v", err)
	}
}

// parseCommentID extracts and validates the {commentID} path parameter
func parseCommentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "NotFound", "Comment not found")
		return 0, false
	}
	return id, true
}
