package comments

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shubham0328/mini-blog-api/internal/core/authz"
)

// commentService implements the Service interface
type commentService struct {
	commentRepo Repository
	postStore   PostStore
	logger      *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo Repository, postStore PostStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		commentRepo: commentRepo,
		postStore:   postStore,
		logger:      logger,
	}
}

// Create attaches a new comment to an existing post.
// The parent check runs first: an absent post is 404 even when the body is
// also invalid.
func (s *commentService) Create(ctx context.Context, req CreateCommentRequest) (*CommentView, error) {
	exists, err := s.postStore.Exists(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	if err := validateText(req.Text); err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Text:     req.Text,
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("post_id", created.PostID),
		slog.Int64("author_id", created.AuthorID),
	)

	view := created.View()
	return &view, nil
}

// Update applies a partial update after the ownership check
func (s *commentService) Update(ctx context.Context, actorID, id int64, req UpdateCommentRequest) (*CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModify(actorID, comment.AuthorID) {
		return nil, ErrNotAuthor
	}

	if req.Text != nil {
		if err := validateText(*req.Text); err != nil {
			return nil, err
		}
	}

	updated, err := s.commentRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	view := updated.View()
	return &view, nil
}

// Delete removes a comment after the ownership check
func (s *commentService) Delete(ctx context.Context, actorID, id int64) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModify(actorID, comment.AuthorID) {
		return ErrNotAuthor
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted",
		slog.Int64("comment_id", id),
		slog.Int64("actor_id", actorID),
	)
	return nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text", "text is required")
	}
	// Characters, not bytes, so multibyte text gets the full limit
	if utf8.RuneCountInString(text) > MaxTextLength {
		return NewValidationError("text", "text must be at most 500 characters")
	}
	return nil
}
