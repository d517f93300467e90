package groups

import (
	"context"
	"strings"
)

type groupService struct {
	repo Repository
}

// NewGroupService creates a new group service
func NewGroupService(repo Repository) Service {
	return &groupService{repo: repo}
}

// GetBySlug retrieves a group by its unique slug
func (s *groupService) GetBySlug(ctx context.Context, slug string) (*Group, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

// List retrieves all groups ordered by title
func (s *groupService) List(ctx context.Context) ([]*Group, error) {
	return s.repo.List(ctx)
}
