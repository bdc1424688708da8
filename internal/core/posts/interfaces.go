package posts

import "context"

// Repository defines the interface for post data persistence
type Repository interface {
	// Create inserts a post and fills in the assigned ID and creation time
	Create(ctx context.Context, post *Post) (*Post, error)

	GetByID(ctx context.Context, id int64) (*Post, error)

	// Exists reports whether a post with the given ID exists. Cheaper than
	// GetByID when only the parent check matters (comment creation).
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns up to limit posts ordered by ID descending (newest
	// first), skipping offset rows. A window past the end returns an empty
	// slice, not an error.
	List(ctx context.Context, limit, offset int) ([]*Post, error)

	// Update applies a partial update and returns the updated row.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, id int64, req UpdatePostRequest) (*Post, error)

	// Delete removes the post and all of its comments as a single atomic
	// unit. Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error
}

// Service defines the business logic interface for post operations
type Service interface {
	// List returns one page of posts, newest first, each with nested
	// comments and the author's username.
	List(ctx context.Context, page, pageSize int) ([]*PostView, error)

	Get(ctx context.Context, id int64) (*PostView, error)

	Create(ctx context.Context, req CreatePostRequest) (*PostView, error)

	// Update applies a partial update on behalf of actorID.
	// Returns ErrNotAuthor if the actor does not own the post.
	Update(ctx context.Context, actorID, id int64, req UpdatePostRequest) (*PostView, error)

	// Delete removes a post and its comments on behalf of actorID
	Delete(ctx context.Context, actorID, id int64) error
}
