package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Inkwell/internal/core/follows"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts the follow edge.
// ON CONFLICT DO NOTHING makes retries and double-clicks no-ops.
func (r *postgresFollowRepo) Create(ctx context.Context, followerID, targetID int64) error {
	query := `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followed_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, followerID, targetID); err != nil {
		return fmt.Errorf("failed to create follow edge: %w", err)
	}
	return nil
}

// Delete removes the follow edge. Deleting an absent edge is a no-op.
func (r *postgresFollowRepo) Delete(ctx context.Context, followerID, targetID int64) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	if _, err := r.db.ExecContext(ctx, query, followerID, targetID); err != nil {
		return fmt.Errorf("failed to delete follow edge: %w", err)
	}
	return nil
}

// Exists reports whether the follow edge is present
func (r *postgresFollowRepo) Exists(ctx context.Context, followerID, targetID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, followerID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}
	return exists, nil
}

// ListFollowedIDs returns the IDs of every author the follower follows
func (r *postgresFollowRepo) ListFollowedIDs(ctx context.Context, followerID int64) ([]int64, error) {
	query := `SELECT followed_id FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []int64{}
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("failed to scan followed author: %w", scanErr)
		}
		result = append(result, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow edges: %w", err)
	}

	return result, nil
}
