package comments

import (
	"time"
)

// MaxTextLength is the maximum comment length enforced on create and update
const MaxTextLength = 500

// Comment represents a comment attached to exactly one post.
// PostID, AuthorID and CreatedAt are fixed at creation; only the author may
// change Text. Comments never outlive their post: deleting the post deletes
// them in the same transaction.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

// CreateCommentRequest represents the input for commenting on a post
type CreateCommentRequest struct {
	Text     string `json:"text"`
	PostID   int64  `json:"-"`
	AuthorID int64  `json:"-"`
}

// UpdateCommentRequest carries a partial update; a nil Text leaves the
// comment unchanged
type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

// CommentView is the API representation of a comment as nested under its
// post. There is no standalone comment read endpoint, so this is the only
// serialized form.
type CommentView struct {
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
	ID        int64     `json:"id"`
}

// View converts a comment to its API representation
func (c *Comment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
