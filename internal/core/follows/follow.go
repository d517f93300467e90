package follows

import (
	"context"
	"time"
)

// Follow is a directed edge meaning "follower receives the followed
// author's posts in their personalized feed". At most one edge exists
// per (follower, followed) pair and self-edges are never created.
type Follow struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FollowedID int64     `json:"followedId" db:"followed_id"`
}

// Service defines the business logic interface for the follow graph.
//
// Follow and Unfollow are defensively idempotent: the triggering action
// is a link click, so retries and double-clicks must never corrupt
// state or surface an error to the user.
type Service interface {
	// Follow inserts the (follower, target) edge. Self-follows and
	// already-existing edges are silent no-ops, not errors.
	Follow(ctx context.Context, followerID, targetID int64) error

	// Unfollow removes the edge if present; absent edges and
	// self-unfollows are no-ops.
	Unfollow(ctx context.Context, followerID, targetID int64) error

	// IsFollowing reports whether the edge exists. Pure query.
	IsFollowing(ctx context.Context, followerID, targetID int64) (bool, error)

	// FollowedAuthorIDs returns the IDs of every author the follower
	// follows, for building the personalized feed predicate.
	FollowedAuthorIDs(ctx context.Context, followerID int64) ([]int64, error)
}

// Repository defines the data access interface for follow edges
type Repository interface {
	// Create inserts the edge; inserting an existing edge is a no-op
	Create(ctx context.Context, followerID, targetID int64) error

	// Delete removes the edge; deleting an absent edge is a no-op
	Delete(ctx context.Context, followerID, targetID int64) error

	Exists(ctx context.Context, followerID, targetID int64) (bool, error)
	ListFollowedIDs(ctx context.Context, followerID int64) ([]int64, error)
}
