package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (text, author_id, group_id, image_key, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Text,
		post.AuthorID,
		post.GroupID,
		post.ImageKey,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return fmt.Errorf("post references unknown author or group: %w", err)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `SELECT id, text, author_id, group_id, image_key, created_at FROM posts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Text,
		&post.AuthorID,
		&post.GroupID,
		&post.ImageKey,
		&post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// GetViewByID retrieves a post with its author and group resolved in one query
func (r *postgresPostRepo) GetViewByID(ctx context.Context, id int64) (*posts.PostView, error) {
	query := `
		SELECT
			p.id, p.text, p.image_key, p.created_at,
			a.id, a.username,
			g.id, g.title, g.slug
		FROM posts p
		INNER JOIN authors a ON p.author_id = a.id
		LEFT JOIN groups g ON p.group_id = g.id
		WHERE p.id = $1`

	view, err := scanPostView(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	return view, nil
}

// Update rewrites a post's mutable fields. Last writer wins.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image_key = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, post.ID, post.Text, post.GroupID, post.ImageKey)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}
