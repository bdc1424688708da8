package posts

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/shubham0328/mini-blog-api/internal/core/authz"
	"github.com/shubham0328/mini-blog-api/internal/core/comments"
	"github.com/shubham0328/mini-blog-api/internal/core/users"
)

// postService implements the Service interface.
// Coordinates the post repository with batch author and comment hydration
// so a listed page costs three queries regardless of page size.
type postService struct {
	postRepo    Repository
	commentRepo comments.Repository
	userRepo    users.Repository
	logger      *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(postRepo Repository, commentRepo comments.Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// List returns one page of posts, newest first.
// The window is standard offset pagination: [(page-1)*pageSize, +pageSize).
// A page past the end of the set yields an empty slice.
func (s *postService) List(ctx context.Context, page, pageSize int) ([]*PostView, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// Saturate instead of overflowing: any window this deep is past the
	// end of the set, which is an empty page, not an error.
	if page-1 > math.MaxInt/pageSize {
		return []*PostView{}, nil
	}

	offset := (page - 1) * pageSize
	posts, err := s.postRepo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, posts)
}

// Get retrieves a single post with its nested comments
func (s *postService) Get(ctx context.Context, id int64) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, []*Post{post})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Create validates and persists a new post authored by the caller
func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*PostView, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	post := &Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		slog.Int64("post_id", created.ID),
		slog.Int64("author_id", created.AuthorID),
	)

	views, err := s.buildViews(ctx, []*Post{created})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Update applies a partial update after the ownership check.
// Only supplied fields change; author and creation time have no update path.
func (s *postService) Update(ctx context.Context, actorID, id int64, req UpdatePostRequest) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModify(actorID, post.AuthorID) {
		return nil, ErrNotAuthor
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Content != nil {
		if err := validateContent(*req.Content); err != nil {
			return nil, err
		}
	}

	updated, err := s.postRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, []*Post{updated})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Delete removes a post and cascades to its comments after the ownership
// check. The cascade runs inside a single repository transaction.
func (s *postService) Delete(ctx context.Context, actorID, id int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModify(actorID, post.AuthorID) {
		return ErrNotAuthor
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted",
		slog.Int64("post_id", id),
		slog.Int64("actor_id", actorID),
	)
	return nil
}

// buildViews hydrates authors and comments for a batch of posts
func (s *postService) buildViews(ctx context.Context, posts []*Post) ([]*PostView, error) {
	if len(posts) == 0 {
		return []*PostView{}, nil
	}

	postIDs := make([]int64, 0, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	seen := make(map[int64]struct{}, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, ok := seen[p.AuthorID]; !ok {
			seen[p.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, p.AuthorID)
		}
	}

	commentsByPost, err := s.commentRepo.ListByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	authors, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		view := &PostView{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			Comments:  []comments.CommentView{},
		}
		if author, ok := authors[p.AuthorID]; ok {
			view.Author = author.Username
		}
		for _, c := range commentsByPost[p.ID] {
			view.Comments = append(view.Comments, c.View())
		}
		views = append(views, view)
	}

	return views, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	// Characters, not bytes, so multibyte titles get the full limit
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "title must be at most 200 characters")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return NewValidationError("content", "content must be at most 2000 characters")
	}
	return nil
}
