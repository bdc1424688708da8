package posts

import (
	"time"

	"github.com/shubham0328/mini-blog-api/internal/core/comments"
)

// Field limits enforced on create and update
const (
	MaxTitleLength   = 200
	MaxContentLength = 2000
)

// Pagination defaults for the list endpoint
const (
	DefaultPage     = 1
	DefaultPageSize = 5
)

// Post represents a blog post as persisted.
// AuthorID and CreatedAt are fixed at creation; only the author may change
// Title and Content.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

// CreatePostRequest represents the input for creating a post.
// The author is always the authenticated caller, never client-supplied.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"-"`
}

// UpdatePostRequest carries a partial update. Nil fields are left unchanged;
// author and creation time are not updatable through any path.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostView is the API representation of a post: author flattened to a
// username and comments nested in creation order.
type PostView struct {
	CreatedAt time.Time              `json:"created_at"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	Author    string                 `json:"author"`
	Comments  []comments.CommentView `json:"comments"`
	ID        int64                  `json:"id"`
}
