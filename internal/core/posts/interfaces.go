package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost creates a new post authored by the authenticated identity.
	// Text must be non-empty; group and image are optional.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// UpdatePost mutates an existing post. Only the original author may
	// edit; any other editor gets ErrNotAuthor and no fields change.
	// Writes are last-writer-wins.
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)

	// GetPost retrieves a post by ID, returning ErrNotFound when absent
	GetPost(ctx context.Context, id int64) (*Post, error)

	// GetPostView retrieves a post with its author and group resolved
	GetPostView(ctx context.Context, id int64) (*PostView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	GetViewByID(ctx context.Context, id int64) (*PostView, error)
	Update(ctx context.Context, post *Post) error
}
