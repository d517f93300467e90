package feed

import (
	"context"
	"errors"

	"Inkwell/internal/core/authors"
	"Inkwell/internal/core/groups"
	"Inkwell/internal/core/posts"
)

// ScopeKind selects which posts belong to a requested feed
type ScopeKind int

const (
	// ScopeGlobal selects all posts
	ScopeGlobal ScopeKind = iota
	// ScopeGroup selects posts tagged to the group with the given slug
	ScopeGroup
	// ScopeAuthor selects posts written by the named author
	ScopeAuthor
	// ScopeFollowing selects posts by authors the viewer follows;
	// requires an authenticated viewer
	ScopeFollowing
)

// Scope is the filter criterion for a feed request
type Scope struct {
	GroupSlug      string
	AuthorUsername string
	Kind           ScopeKind
}

// Global returns the all-posts scope
func Global() Scope { return Scope{Kind: ScopeGlobal} }

// ByGroup returns the scope for a group's posts
func ByGroup(slug string) Scope { return Scope{Kind: ScopeGroup, GroupSlug: slug} }

// ByAuthor returns the scope for an author's posts
func ByAuthor(username string) Scope { return Scope{Kind: ScopeAuthor, AuthorUsername: username} }

// Following returns the personalized scope for the viewer's follows
func Following() Scope { return Scope{Kind: ScopeFollowing} }

// Feed is an ordered post listing plus the scope metadata the rendering
// layer needs. Posts are sorted by creation time descending with the
// post ID as tie-break, so pagination is deterministic across repeated
// requests against unchanged data.
type Feed struct {
	Group   *groups.Group     `json:"group,omitempty"`
	Profile *authors.Profile  `json:"profile,omitempty"`
	Posts   []*posts.PostView `json:"posts"`

	// IsFollowing reports whether the viewer follows the profile's
	// author. Only meaningful for the author scope with a logged-in
	// viewer.
	IsFollowing bool `json:"isFollowing"`
}

// Service defines the feed composition interface
type Service interface {
	// ComposeFeed resolves the scope into an ordered, eagerly
	// denormalized post listing. viewerID is 0 for anonymous viewers.
	ComposeFeed(ctx context.Context, scope Scope, viewerID int64) (*Feed, error)
}

// Repository defines the bulk feed queries. Implementations must
// resolve author and group in the same query as the posts themselves;
// per-item lookups are a contract violation.
type Repository interface {
	ListAll(ctx context.Context) ([]*posts.PostView, error)
	ListByGroup(ctx context.Context, groupID int64) ([]*posts.PostView, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error)
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]*posts.PostView, error)
}

// Errors
var (
	// ErrAuthRequired is returned when an anonymous viewer requests the
	// following scope. The boundary surfaces it as a redirect to login.
	ErrAuthRequired = errors.New("authentication required")
)
