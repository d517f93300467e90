package follows

import (
	"context"
	"fmt"
)

type followService struct {
	repo Repository
}

// NewFollowService creates a new follow graph service
func NewFollowService(repo Repository) Service {
	return &followService{repo: repo}
}

// Follow inserts the (follower, target) edge.
// Self-follows and duplicate edges are silent no-ops.
func (s *followService) Follow(ctx context.Context, followerID, targetID int64) error {
	if followerID <= 0 || targetID <= 0 {
		return fmt.Errorf("follower and target IDs are required")
	}
	if followerID == targetID {
		// Self-follow is not an error: the triggering action is a link
		// click and must never produce a user-visible failure.
		return nil
	}
	return s.repo.Create(ctx, followerID, targetID)
}

// Unfollow removes the edge if present
func (s *followService) Unfollow(ctx context.Context, followerID, targetID int64) error {
	if followerID <= 0 || targetID <= 0 {
		return fmt.Errorf("follower and target IDs are required")
	}
	if followerID == targetID {
		return nil
	}
	return s.repo.Delete(ctx, followerID, targetID)
}

// IsFollowing reports whether the edge exists
func (s *followService) IsFollowing(ctx context.Context, followerID, targetID int64) (bool, error) {
	if followerID <= 0 || targetID <= 0 || followerID == targetID {
		return false, nil
	}
	return s.repo.Exists(ctx, followerID, targetID)
}

// FollowedAuthorIDs returns the IDs of every author the follower follows
func (s *followService) FollowedAuthorIDs(ctx context.Context, followerID int64) ([]int64, error) {
	if followerID <= 0 {
		return nil, fmt.Errorf("follower ID is required")
	}
	return s.repo.ListFollowedIDs(ctx, followerID)
}
