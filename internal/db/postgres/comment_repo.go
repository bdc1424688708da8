package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"github.com/shubham0328/mini-blog-api/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, author_id, text, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// GetByID retrieves a comment by its identifier
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	comment := &comments.Comment{}
	query := `SELECT id, post_id, author_id, text, created_at FROM comments WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// ListByPostIDs retrieves the comments for a batch of posts in one query,
// ordered by creation (ID ascending) within each post
func (r *postgresCommentRepo) ListByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]*comments.Comment, error) {
	if len(postIDs) == 0 {
		return make(map[int64][]*comments.Comment), nil
	}

	query := `
		SELECT id, post_id, author_id, text, created_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query comments by post ids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := make(map[int64][]*comments.Comment, len(postIDs))
	for rows.Next() {
		comment := &comments.Comment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		result[comment.PostID] = append(result[comment.PostID], comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return result, nil
}

// Update modifies an existing comment's text
func (r *postgresCommentRepo) Update(ctx context.Context, id int64, req comments.UpdateCommentRequest) (*comments.Comment, error) {
	if req.Text == nil {
		return r.GetByID(ctx, id)
	}

	query := `
		UPDATE comments
		SET text = $1
		WHERE id = $2
		RETURNING id, post_id, author_id, text, created_at`

	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, query, *req.Text, id).
		Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment
func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for comment=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}
