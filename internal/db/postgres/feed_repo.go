package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"Inkwell/internal/core/feed"
	"Inkwell/internal/core/posts"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feed.Repository {
	return &postgresFeedRepo{db: db}
}

// feedSelect joins each post with its author and optional group so the
// composer never needs per-item lookups. Ordering is creation time
// descending with the post ID as a stable tie-break, which keeps
// pagination deterministic across repeated requests.
const feedSelect = `
	SELECT
		p.id, p.text, p.image_key, p.created_at,
		a.id, a.username,
		g.id, g.title, g.slug
	FROM posts p
	INNER JOIN authors a ON p.author_id = a.id
	LEFT JOIN groups g ON p.group_id = g.id`

const feedOrder = ` ORDER BY p.created_at DESC, p.id DESC`

// ListAll retrieves every post, newest first
func (r *postgresFeedRepo) ListAll(ctx context.Context) ([]*posts.PostView, error) {
	return r.query(ctx, feedSelect+feedOrder)
}

// ListByGroup retrieves the group's posts, newest first
func (r *postgresFeedRepo) ListByGroup(ctx context.Context, groupID int64) ([]*posts.PostView, error) {
	return r.query(ctx, feedSelect+` WHERE p.group_id = $1`+feedOrder, groupID)
}

// ListByAuthor retrieves the author's posts, newest first
func (r *postgresFeedRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error) {
	return r.query(ctx, feedSelect+` WHERE p.author_id = $1`+feedOrder, authorID)
}

// ListByAuthors retrieves posts by any of the given authors, newest
// first. Used for the personalized following feed.
func (r *postgresFeedRepo) ListByAuthors(ctx context.Context, authorIDs []int64) ([]*posts.PostView, error) {
	if len(authorIDs) == 0 {
		return []*posts.PostView{}, nil
	}
	return r.query(ctx, feedSelect+` WHERE p.author_id = ANY($1)`+feedOrder, pq.Array(authorIDs))
}

func (r *postgresFeedRepo) query(ctx context.Context, query string, args ...interface{}) ([]*posts.PostView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*posts.PostView{}
	for rows.Next() {
		view, scanErr := scanPostView(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan feed post: %w", scanErr)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed: %w", err)
	}

	return result, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPostView scans one joined post row into a denormalized view
func scanPostView(row rowScanner) (*posts.PostView, error) {
	view := &posts.PostView{Author: &posts.AuthorRef{}}

	var imageKey sql.NullString
	var groupID sql.NullInt64
	var groupTitle, groupSlug sql.NullString

	err := row.Scan(
		&view.ID,
		&view.Text,
		&imageKey,
		&view.CreatedAt,
		&view.Author.ID,
		&view.Author.Username,
		&groupID,
		&groupTitle,
		&groupSlug,
	)
	if err != nil {
		return nil, err
	}

	if imageKey.Valid {
		view.ImageKey = &imageKey.String
	}
	if groupID.Valid {
		view.Group = &posts.GroupRef{
			ID:    groupID.Int64,
			Title: groupTitle.String,
			Slug:  groupSlug.String,
		}
	}

	return view, nil
}
