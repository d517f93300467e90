package comments

import (
	"context"
	"fmt"
	"strings"
)

const maxTextLength = 5000

type commentService struct {
	repo Repository
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository) Service {
	return &commentService{repo: repo}
}

// CreateComment appends a comment to a post
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	if req.AuthorID <= 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if req.PostID <= 0 {
		return nil, ErrPostNotFound
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, NewValidationError("text", "text must not be empty")
	}
	if len(req.Text) > maxTextLength {
		return nil, NewValidationError("text", fmt.Sprintf("text must not exceed %d characters", maxTextLength))
	}

	comment := &Comment{
		Text:     strings.TrimSpace(req.Text),
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForPost retrieves all comments on a post, oldest first
func (s *commentService) ListForPost(ctx context.Context, postID int64) ([]*CommentView, error) {
	if postID <= 0 {
		return nil, ErrPostNotFound
	}
	return s.repo.ListForPost(ctx, postID)
}
