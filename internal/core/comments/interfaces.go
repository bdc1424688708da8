package comments

import "context"

// Repository defines the interface for comment data persistence
type Repository interface {
	// Create inserts a comment and fills in the assigned ID and creation time
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	GetByID(ctx context.Context, id int64) (*Comment, error)

	// ListByPostIDs returns the comments for a batch of posts in a single
	// query, ordered by creation (ID ascending) within each post. Posts
	// without comments are simply absent from the map.
	ListByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]*Comment, error)

	// Update applies a partial update and returns the updated row.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, id int64, req UpdateCommentRequest) (*Comment, error)

	// Delete removes a comment. Returns ErrCommentNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// PostStore is the subset of the post store the comment service depends on:
// comment creation only needs to know the parent post exists.
type PostStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service defines the business logic interface for comment operations
type Service interface {
	// Create attaches a new comment to a post on behalf of the
	// authenticated author. Returns ErrPostNotFound if the post is absent.
	Create(ctx context.Context, req CreateCommentRequest) (*CommentView, error)

	// Update applies a partial update on behalf of actorID.
	// Returns ErrNotAuthor if the actor does not own the comment.
	Update(ctx context.Context, actorID, id int64, req UpdateCommentRequest) (*CommentView, error)

	// Delete removes a comment on behalf of actorID
	Delete(ctx context.Context, actorID, id int64) error
}
