package groups

import "context"

// Service defines the business logic interface for groups
type Service interface {
	// GetBySlug retrieves a group by its unique slug
	// Returns ErrNotFound for an unknown slug
	GetBySlug(ctx context.Context, slug string) (*Group, error)

	// List retrieves all groups ordered by title, for the post form
	List(ctx context.Context) ([]*Group, error)
}

// Repository defines the data access interface for groups
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	GetByID(ctx context.Context, id int64) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
}
