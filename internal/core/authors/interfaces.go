package authors

import "context"

// Service defines the business logic interface for authors
type Service interface {
	// GetByUsername retrieves an author by their unique username
	// Returns ErrNotFound for an unknown name
	GetByUsername(ctx context.Context, username string) (*Author, error)

	// GetByID retrieves an author by ID
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetOrCreate looks up an author by username, registering them on
	// first login. Used only by the authentication boundary.
	GetOrCreate(ctx context.Context, username string) (*Author, error)

	// GetProfile retrieves an author together with their profile counters
	GetProfile(ctx context.Context, username string) (*Profile, error)
}

// Repository defines the data access interface for authors
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Author, error)
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Create inserts a new author; the username must be unique
	Create(ctx context.Context, author *Author) error

	// GetProfile retrieves the author and their counters in one query
	GetProfile(ctx context.Context, username string) (*Profile, error)
}
