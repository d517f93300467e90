package authors

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Usernames must start/end with alphanumeric and may contain hyphens in between
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9_-]*[a-zA-Z0-9])?$`)

type authorService struct {
	repo Repository
}

// NewAuthorService creates a new author service
func NewAuthorService(repo Repository) Service {
	return &authorService{repo: repo}
}

// GetByUsername retrieves an author by their unique username
func (s *authorService) GetByUsername(ctx context.Context, username string) (*Author, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetByUsername(ctx, username)
}

// GetByID retrieves an author by ID
func (s *authorService) GetByID(ctx context.Context, id int64) (*Author, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetOrCreate looks up an author by username, registering them on first login
func (s *authorService) GetOrCreate(ctx context.Context, username string) (*Author, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	if len(username) > 64 {
		return nil, NewValidationError("username", "username must not exceed 64 characters")
	}
	if !usernameRegex.MatchString(username) {
		return nil, NewValidationError("username", "username may only contain letters, digits, hyphens and underscores")
	}

	author, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	author = &Author{Username: username}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// GetProfile retrieves an author together with their profile counters
func (s *authorService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetProfile(ctx, username)
}
