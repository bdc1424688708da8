package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/shubham0328/mini-blog-api/internal/core/posts"
)

// ListHandler handles post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts/
// Open endpoint. Optional page and page_size query parameters select an
// offset window over the full set ordered newest first; a window past the
// end returns an empty list.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePositiveInt(r.URL.Query().Get("page"), posts.DefaultPage)
	if err != nil {
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest",
			"page "+err.Error(), "page")
		return
	}

	pageSize, err := parsePositiveInt(r.URL.Query().Get("page_size"), posts.DefaultPageSize)
	if err != nil {
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest",
			"page_size "+err.Error(), "page_size")
		return
	}

	views, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Printf("Failed to encode post list response: %v", err)
	}
}

// parseError carries the reason a query parameter failed to parse so the
// caller can prefix it with the parameter name
type parseError struct {
	reason string
}

func (e *parseError) Error() string { return e.reason }

// parsePositiveInt parses a positive integer query parameter.
// An absent parameter yields the default; a non-integer or non-positive
// value is an error.
func parsePositiveInt(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, &parseError{reason: "must be an integer"}
	}
	if parsed <= 0 {
		return 0, &parseError{reason: "must be a positive integer"}
	}

	return parsed, nil
}
