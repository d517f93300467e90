package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing
type mockRepository struct {
	byID        map[int64]*Post
	nextID      int64
	updateCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{byID: make(map[int64]*Post), nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, post *Post) error {
	post.ID = m.nextID
	post.CreatedAt = time.Now()
	m.nextID++
	stored := *post
	m.byID[post.ID] = &stored
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	post, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockRepository) GetViewByID(ctx context.Context, id int64) (*PostView, error) {
	post, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PostView{
		ID:        post.ID,
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
		Author:    &AuthorRef{ID: post.AuthorID},
	}, nil
}

func (m *mockRepository) Update(ctx context.Context, post *Post) error {
	m.updateCalls++
	stored := *post
	m.byID[post.ID] = &stored
	return nil
}

func TestCreatePost_Success(t *testing.T) {
	repo := newMockRepository()
	svc := NewPostService(repo)

	groupID := int64(3)
	post, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Text:     "  hello world  ",
		AuthorID: 1,
		GroupID:  &groupID,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, int64(1), post.AuthorID)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, groupID, *post.GroupID)
}

func TestCreatePost_EmptyTextFailsValidation(t *testing.T) {
	repo := newMockRepository()
	svc := NewPostService(repo)

	tests := []string{"", "   ", "\n\t"}
	for _, text := range tests {
		_, err := svc.CreatePost(context.Background(), CreatePostRequest{Text: text, AuthorID: 1})
		require.Error(t, err)
		assert.True(t, IsValidationError(err), "text=%q", text)
	}
	assert.Empty(t, repo.byID, "no post stored on validation failure")
}

func TestCreatePost_RequiresAuthor(t *testing.T) {
	svc := NewPostService(newMockRepository())

	_, err := svc.CreatePost(context.Background(), CreatePostRequest{Text: "ok"})
	assert.Error(t, err)
}

func TestUpdatePost_AuthorMayEdit(t *testing.T) {
	repo := newMockRepository()
	svc := NewPostService(repo)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "original", AuthorID: 1})
	require.NoError(t, err)

	groupID := int64(5)
	updated, err := svc.UpdatePost(ctx, UpdatePostRequest{
		PostID:   created.ID,
		EditorID: 1,
		Text:     "revised",
		GroupID:  &groupID,
	})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Text)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, groupID, *updated.GroupID)
	assert.Len(t, repo.byID, 1, "post count stays constant across edits")
}

func TestUpdatePost_NonAuthorLeavesFieldsUnchanged(t *testing.T) {
	repo := newMockRepository()
	svc := NewPostService(repo)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostRequest{Text: "original", AuthorID: 1})
	require.NoError(t, err)

	_, err = svc.UpdatePost(ctx, UpdatePostRequest{
		PostID:   created.ID,
		EditorID: 2,
		Text:     "hijacked",
	})
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.Zero(t, repo.updateCalls, "no store write for a non-author edit")

	stored, err := svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Text)
}

func TestUpdatePost_UnknownPostIsNotFound(t *testing.T) {
	svc := NewPostService(newMockRepository())

	_, err := svc.UpdatePost(context.Background(), UpdatePostRequest{PostID: 99, EditorID: 1, Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorizeEdit(t *testing.T) {
	post := &Post{ID: 1, AuthorID: 7}

	tests := []struct {
		name     string
		post     *Post
		viewerID int64
		want     EditDecision
	}{
		{"author", post, 7, EditAllowed},
		{"other viewer", post, 8, EditDenied},
		{"anonymous", post, 0, EditDenied},
		{"nil post", nil, 7, EditDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthorizeEdit(tt.post, tt.viewerID))
		})
	}
}
