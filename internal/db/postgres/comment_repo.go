package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Inkwell/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID,
		comment.AuthorID,
		comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return comments.ErrPostNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// ListForPost retrieves the post's comments with their authors,
// ascending by creation time
func (r *postgresCommentRepo) ListForPost(ctx context.Context, postID int64) ([]*comments.CommentView, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, a.username, c.text, c.created_at
		FROM comments c
		INNER JOIN authors a ON c.author_id = a.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*comments.CommentView{}
	for rows.Next() {
		view := &comments.CommentView{}
		scanErr := rows.Scan(
			&view.ID,
			&view.PostID,
			&view.AuthorID,
			&view.AuthorUsername,
			&view.Text,
			&view.CreatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", scanErr)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}
