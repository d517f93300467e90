package posts

import (
	"context"
	"fmt"
	"strings"
)

const maxTextLength = 20000

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

// CreatePost creates a new post authored by the authenticated identity
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if req.AuthorID <= 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if err := validateText(req.Text); err != nil {
		return nil, err
	}

	post := &Post{
		Text:     strings.TrimSpace(req.Text),
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
		ImageKey: req.ImageKey,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// UpdatePost mutates an existing post if the editor is its author
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if AuthorizeEdit(post, req.EditorID) != EditAllowed {
		return nil, ErrNotAuthor
	}

	if err := validateText(req.Text); err != nil {
		return nil, err
	}

	post.Text = strings.TrimSpace(req.Text)
	post.GroupID = req.GroupID
	if req.ImageKey != nil {
		post.ImageKey = req.ImageKey
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetPostView retrieves a post with its author and group resolved
func (s *postService) GetPostView(ctx context.Context, id int64) (*PostView, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetViewByID(ctx, id)
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text", "text must not be empty")
	}
	if len(text) > maxTextLength {
		return NewValidationError("text", fmt.Sprintf("text must not exceed %d characters", maxTextLength))
	}
	return nil
}
