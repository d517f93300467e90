package authors

import (
	"time"
)

// Author represents a registered writer identity.
// Authors are created by the authentication layer and are immutable
// to the rest of the core: posts, comments and follow edges reference
// them by ID but never mutate them.
type Author struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	ID        int64     `json:"id" db:"id"`
}

// Profile bundles an author with the counters shown on their profile page.
type Profile struct {
	Author        *Author `json:"author"`
	PostCount     int     `json:"postCount"`
	FollowerCount int     `json:"followerCount"`
	FollowedCount int     `json:"followedCount"`
}
