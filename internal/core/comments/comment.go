package comments

import (
	"time"
)

// Comment is a text reply attached to exactly one post. Comments are
// append-only: there is no edit or delete operation.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
}

// CommentView carries the commenter's name for display
type CommentView struct {
	CreatedAt      time.Time `json:"createdAt"`
	Text           string    `json:"text"`
	AuthorUsername string    `json:"authorUsername"`
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	AuthorID       int64     `json:"authorId"`
}

// CreateCommentRequest represents input for creating a comment.
// AuthorID and PostID are forced server-side from the session and the
// route, never trusted from form input.
type CreateCommentRequest struct {
	Text     string `json:"text"`
	PostID   int64  `json:"-"`
	AuthorID int64  `json:"-"`
}
