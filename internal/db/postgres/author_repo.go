package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Inkwell/internal/core/authors"
)

type postgresAuthorRepo struct {
	db *sql.DB
}

// NewAuthorRepository creates a new PostgreSQL author repository
func NewAuthorRepository(db *sql.DB) authors.Repository {
	return &postgresAuthorRepo{db: db}
}

// GetByUsername retrieves an author by their unique username
func (r *postgresAuthorRepo) GetByUsername(ctx context.Context, username string) (*authors.Author, error) {
	author := &authors.Author{}
	query := `SELECT id, username, created_at FROM authors WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&author.ID,
		&author.Username,
		&author.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, authors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author by username: %w", err)
	}

	return author, nil
}

// GetByID retrieves an author by ID
func (r *postgresAuthorRepo) GetByID(ctx context.Context, id int64) (*authors.Author, error) {
	author := &authors.Author{}
	query := `SELECT id, username, created_at FROM authors WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&author.ID,
		&author.Username,
		&author.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, authors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return author, nil
}

// Create inserts a new author
func (r *postgresAuthorRepo) Create(ctx context.Context, author *authors.Author) error {
	query := `
		INSERT INTO authors (username, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, author.Username).Scan(&author.ID, &author.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return authors.NewValidationError("username", "username is already taken")
		}
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

// GetProfile retrieves the author and their profile counters in one query
func (r *postgresAuthorRepo) GetProfile(ctx context.Context, username string) (*authors.Profile, error) {
	profile := &authors.Profile{Author: &authors.Author{}}
	query := `
		SELECT
			a.id, a.username, a.created_at,
			(SELECT COUNT(*) FROM posts p WHERE p.author_id = a.id) AS post_count,
			(SELECT COUNT(*) FROM follows f WHERE f.followed_id = a.id) AS follower_count,
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = a.id) AS followed_count
		FROM authors a
		WHERE a.username = $1`

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&profile.Author.ID,
		&profile.Author.Username,
		&profile.Author.CreatedAt,
		&profile.PostCount,
		&profile.FollowerCount,
		&profile.FollowedCount,
	)
	if err == sql.ErrNoRows {
		return nil, authors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author profile: %w", err)
	}

	return profile, nil
}
