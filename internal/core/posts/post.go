package posts

import (
	"time"
)

// Post represents a stored post row.
// CreatedAt is assigned at creation and is the sole sort key for feeds;
// ties are broken by ID so repeated reads paginate deterministically.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ImageKey  *string   `json:"imageKey,omitempty" db:"image_key"`
	GroupID   *int64    `json:"groupId,omitempty" db:"group_id"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

// PostView is the denormalized view of a post handed to the rendering
// layer. Author and Group are resolved eagerly by the feed repository in
// the same query as the post itself, never by per-item lookups.
type PostView struct {
	CreatedAt time.Time  `json:"createdAt"`
	Author    *AuthorRef `json:"author"`
	Group     *GroupRef  `json:"group,omitempty"`
	ImageKey  *string    `json:"imageKey,omitempty"`
	Text      string     `json:"text"`
	ID        int64      `json:"id"`
}

// AuthorRef is the minimal author info carried in post views
type AuthorRef struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// GroupRef is the minimal group info carried in post views
type GroupRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	ID    int64  `json:"id"`
}

// CreatePostRequest represents input for creating a new post.
// AuthorID is always taken from the authenticated session, never from
// client input.
type CreatePostRequest struct {
	GroupID  *int64  `json:"groupId,omitempty"`
	ImageKey *string `json:"imageKey,omitempty"`
	Text     string  `json:"text"`
	AuthorID int64   `json:"-"`
}

// UpdatePostRequest represents input for editing an existing post.
// EditorID is the authenticated identity attempting the edit; the
// service refuses the mutation unless it matches the post's author.
type UpdatePostRequest struct {
	GroupID  *int64  `json:"groupId,omitempty"`
	ImageKey *string `json:"imageKey,omitempty"`
	Text     string  `json:"text"`
	PostID   int64   `json:"-"`
	EditorID int64   `json:"-"`
}

// EditDecision is the result of an edit authorization check.
// The boundary layer consults it to decide between rendering the edit
// form and silently redirecting to the post's read view.
type EditDecision int

const (
	EditDenied EditDecision = iota
	EditAllowed
)

// AuthorizeEdit reports whether viewerID may mutate the post.
// Only the original author is allowed.
func AuthorizeEdit(post *Post, viewerID int64) EditDecision {
	if post == nil || viewerID <= 0 || post.AuthorID != viewerID {
		return EditDenied
	}
	return EditAllowed
}
