package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/core/posts"
)

// createTestPost inserts a post at an explicit timestamp so ordering
// assertions don't depend on insert latency
func createTestPost(t *testing.T, db *sql.DB, authorID int64, groupID *int64, text string, createdAt time.Time) int64 {
	var id int64
	err := db.QueryRow(
		`INSERT INTO posts (text, author_id, group_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		text, authorID, groupID, createdAt,
	).Scan(&id)
	require.NoError(t, err, "Failed to create test post")
	return id
}

func TestFeedRepo_ListByAuthorNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	author := createTestAuthor(t, db, "feed-test-author")
	defer cleanupAuthorData(t, db, author.ID)

	now := time.Now().UTC()
	p1 := createTestPost(t, db, author.ID, nil, "first", now.Add(-time.Hour))
	p2 := createTestPost(t, db, author.ID, nil, "second", now)

	repo := NewFeedRepository(db)
	listing, err := repo.ListByAuthor(context.Background(), author.ID)
	require.NoError(t, err)

	require.Len(t, listing, 2)
	assert.Equal(t, p2, listing[0].ID, "most recent post first")
	assert.Equal(t, p1, listing[1].ID)
}

func TestFeedRepo_TiesBrokenByID(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	author := createTestAuthor(t, db, "feed-tie-author")
	defer cleanupAuthorData(t, db, author.ID)

	at := time.Now().UTC().Truncate(time.Second)
	first := createTestPost(t, db, author.ID, nil, "tie one", at)
	second := createTestPost(t, db, author.ID, nil, "tie two", at)

	repo := NewFeedRepository(db)
	listing, err := repo.ListByAuthor(context.Background(), author.ID)
	require.NoError(t, err)

	require.Len(t, listing, 2)
	assert.Equal(t, second, listing[0].ID, "equal timestamps order by ID descending")
	assert.Equal(t, first, listing[1].ID)
}

func TestFeedRepo_DenormalizesAuthorAndGroup(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	author := createTestAuthor(t, db, "feed-denorm-author")
	defer cleanupAuthorData(t, db, author.ID)

	var groupID int64
	err := db.QueryRow(`SELECT id FROM groups WHERE slug = 'general'`).Scan(&groupID)
	require.NoError(t, err, "seeded group missing")

	postID := createTestPost(t, db, author.ID, &groupID, "grouped", time.Now().UTC())

	repo := NewFeedRepository(db)
	listing, err := repo.ListByGroup(context.Background(), groupID)
	require.NoError(t, err)

	var found *posts.PostView
	for _, view := range listing {
		if view.ID == postID {
			found = view
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "feed-denorm-author", found.Author.Username)
	require.NotNil(t, found.Group)
	assert.Equal(t, "general", found.Group.Slug)
}

func TestFeedRepo_ListByAuthorsCoversFollowingFeed(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorA := createTestAuthor(t, db, "feed-multi-a")
	authorB := createTestAuthor(t, db, "feed-multi-b")
	authorC := createTestAuthor(t, db, "feed-multi-c")
	defer cleanupAuthorData(t, db, authorA.ID)
	defer cleanupAuthorData(t, db, authorB.ID)
	defer cleanupAuthorData(t, db, authorC.ID)

	now := time.Now().UTC()
	pa := createTestPost(t, db, authorA.ID, nil, "by a", now.Add(-2*time.Minute))
	pb := createTestPost(t, db, authorB.ID, nil, "by b", now.Add(-time.Minute))
	createTestPost(t, db, authorC.ID, nil, "by c", now)

	repo := NewFeedRepository(db)
	listing, err := repo.ListByAuthors(context.Background(), []int64{authorA.ID, authorB.ID})
	require.NoError(t, err)

	require.Len(t, listing, 2, "posts by unfollowed authors are excluded")
	assert.Equal(t, pb, listing[0].ID)
	assert.Equal(t, pa, listing[1].ID)
}

func TestFeedRepo_EmptyAuthorSetShortCircuits(t *testing.T) {
	repo := NewFeedRepository(nil)

	listing, err := repo.ListByAuthors(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, listing)
}
