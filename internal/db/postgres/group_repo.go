package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Inkwell/internal/core/groups"
)

type postgresGroupRepo struct {
	db *sql.DB
}

// NewGroupRepository creates a new PostgreSQL group repository
func NewGroupRepository(db *sql.DB) groups.Repository {
	return &postgresGroupRepo{db: db}
}

// GetBySlug retrieves a group by its unique slug
func (r *postgresGroupRepo) GetBySlug(ctx context.Context, slug string) (*groups.Group, error) {
	group := &groups.Group{}
	query := `SELECT id, title, slug, description FROM groups WHERE slug = $1`

	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&group.ID,
		&group.Title,
		&group.Slug,
		&group.Description,
	)
	if err == sql.ErrNoRows {
		return nil, groups.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group by slug: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by ID
func (r *postgresGroupRepo) GetByID(ctx context.Context, id int64) (*groups.Group, error) {
	group := &groups.Group{}
	query := `SELECT id, title, slug, description FROM groups WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Title,
		&group.Slug,
		&group.Description,
	)
	if err == sql.ErrNoRows {
		return nil, groups.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group by id: %w", err)
	}

	return group, nil
}

// List retrieves all groups ordered by title
func (r *postgresGroupRepo) List(ctx context.Context) ([]*groups.Group, error) {
	query := `SELECT id, title, slug, description FROM groups ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*groups.Group{}
	for rows.Next() {
		group := &groups.Group{}
		if scanErr := rows.Scan(&group.ID, &group.Title, &group.Slug, &group.Description); scanErr != nil {
			return nil, fmt.Errorf("failed to scan group: %w", scanErr)
		}
		result = append(result, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return result, nil
}
