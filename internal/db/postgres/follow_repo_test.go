package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/core/authors"
)

// setupTestDB creates a test database connection and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, goose.SetDialect("postgres"), "Failed to set goose dialect")
	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

// createTestAuthor inserts an author row for foreign key constraints
func createTestAuthor(t *testing.T, db *sql.DB, username string) *authors.Author {
	repo := NewAuthorRepository(db)
	author := &authors.Author{Username: username}
	require.NoError(t, repo.Create(context.Background(), author), "Failed to create test author")
	return author
}

// cleanupAuthorData removes an author and everything hanging off them
func cleanupAuthorData(t *testing.T, db *sql.DB, authorID int64) {
	_, err := db.Exec("DELETE FROM authors WHERE id = $1", authorID)
	require.NoError(t, err)
}

func TestFollowRepo_CreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	follower := createTestAuthor(t, db, "follow-test-follower")
	followed := createTestAuthor(t, db, "follow-test-followed")
	defer cleanupAuthorData(t, db, follower.ID)
	defer cleanupAuthorData(t, db, followed.ID)

	repo := NewFollowRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, follower.ID, followed.ID))
	require.NoError(t, repo.Create(ctx, follower.ID, followed.ID), "duplicate insert must be a no-op")

	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND followed_id = $2",
		follower.ID, followed.ID,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "exactly one edge after double follow")
}

func TestFollowRepo_DeleteAbsentEdgeIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	follower := createTestAuthor(t, db, "unfollow-test-follower")
	followed := createTestAuthor(t, db, "unfollow-test-followed")
	defer cleanupAuthorData(t, db, follower.ID)
	defer cleanupAuthorData(t, db, followed.ID)

	repo := NewFollowRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, follower.ID, followed.ID), "deleting an absent edge must not error")

	exists, err := repo.Exists(ctx, follower.ID, followed.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepo_ExistsAndList(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	follower := createTestAuthor(t, db, "list-test-follower")
	followedA := createTestAuthor(t, db, "list-test-followed-a")
	followedB := createTestAuthor(t, db, "list-test-followed-b")
	defer cleanupAuthorData(t, db, follower.ID)
	defer cleanupAuthorData(t, db, followedA.ID)
	defer cleanupAuthorData(t, db, followedB.ID)

	repo := NewFollowRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, follower.ID, followedA.ID))
	require.NoError(t, repo.Create(ctx, follower.ID, followedB.ID))

	exists, err := repo.Exists(ctx, follower.ID, followedA.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	ids, err := repo.ListFollowedIDs(ctx, follower.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{followedA.ID, followedB.ID}, ids)

	require.NoError(t, repo.Delete(ctx, follower.ID, followedA.ID))

	ids, err = repo.ListFollowedIDs(ctx, follower.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{followedB.ID}, ids)
}
