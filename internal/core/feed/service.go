package feed

import (
	"context"
	"fmt"

	"Inkwell/internal/core/authors"
	"Inkwell/internal/core/follows"
	"Inkwell/internal/core/groups"
	"Inkwell/internal/core/posts"
)

type feedService struct {
	repo      Repository
	authorSvc authors.Service
	groupSvc  groups.Service
	followSvc follows.Service
}

// NewFeedService creates a new feed composer
func NewFeedService(repo Repository, authorSvc authors.Service, groupSvc groups.Service, followSvc follows.Service) Service {
	return &feedService{
		repo:      repo,
		authorSvc: authorSvc,
		groupSvc:  groupSvc,
		followSvc: followSvc,
	}
}

// ComposeFeed resolves the scope into an ordered, denormalized post listing
func (s *feedService) ComposeFeed(ctx context.Context, scope Scope, viewerID int64) (*Feed, error) {
	switch scope.Kind {
	case ScopeGlobal:
		return s.globalFeed(ctx)
	case ScopeGroup:
		return s.groupFeed(ctx, scope.GroupSlug)
	case ScopeAuthor:
		return s.authorFeed(ctx, scope.AuthorUsername, viewerID)
	case ScopeFollowing:
		return s.followingFeed(ctx, viewerID)
	default:
		return nil, fmt.Errorf("unknown feed scope: %d", scope.Kind)
	}
}

func (s *feedService) globalFeed(ctx context.Context) (*Feed, error) {
	listing, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return &Feed{Posts: listing}, nil
}

func (s *feedService) groupFeed(ctx context.Context, slug string) (*Feed, error) {
	group, err := s.groupSvc.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	listing, err := s.repo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group posts: %w", err)
	}
	return &Feed{Group: group, Posts: listing}, nil
}

func (s *feedService) authorFeed(ctx context.Context, username string, viewerID int64) (*Feed, error) {
	profile, err := s.authorSvc.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	listing, err := s.repo.ListByAuthor(ctx, profile.Author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	following := false
	if viewerID > 0 {
		following, err = s.followSvc.IsFollowing(ctx, viewerID, profile.Author.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check follow edge: %w", err)
		}
	}

	return &Feed{Profile: profile, Posts: listing, IsFollowing: following}, nil
}

func (s *feedService) followingFeed(ctx context.Context, viewerID int64) (*Feed, error) {
	if viewerID <= 0 {
		return nil, ErrAuthRequired
	}

	followedIDs, err := s.followSvc.FollowedAuthorIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve followed authors: %w", err)
	}
	if len(followedIDs) == 0 {
		return &Feed{Posts: []*posts.PostView{}}, nil
	}

	listing, err := s.repo.ListByAuthors(ctx, followedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list following feed: %w", err)
	}
	return &Feed{Posts: listing}, nil
}
