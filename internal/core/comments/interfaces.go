package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	// CreateComment appends a comment to a post. Requires an
	// authenticated author and non-empty text; the parent post must exist.
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	// ListForPost retrieves all comments on a post, oldest first
	ListForPost(ctx context.Context, postID int64) ([]*CommentView, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a comment; returns ErrPostNotFound if the parent
	// post's foreign key fails
	Create(ctx context.Context, comment *Comment) error

	// ListForPost retrieves the post's comments joined with their
	// authors, ascending by creation time
	ListForPost(ctx context.Context, postID int64) ([]*CommentView, error)
}
