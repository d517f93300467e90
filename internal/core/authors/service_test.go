package authors

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing
type mockRepository struct {
	byUsername  map[string]*Author
	createCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{byUsername: map[string]*Author{}}
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*Author, error) {
	if a, ok := m.byUsername[username]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*Author, error) {
	for _, a := range m.byUsername {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepository) Create(ctx context.Context, author *Author) error {
	m.createCalls++
	author.ID = int64(len(m.byUsername) + 1)
	m.byUsername[author.Username] = author
	return nil
}

func (m *mockRepository) GetProfile(ctx context.Context, username string) (*Profile, error) {
	a, err := m.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &Profile{Author: a}, nil
}

func TestGetOrCreate_RegistersOnFirstLogin(t *testing.T) {
	repo := newMockRepository()
	service := NewAuthorService(repo)

	author, err := service.GetOrCreate(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", author.Username)
	assert.Equal(t, 1, repo.createCalls)

	// A second login returns the same identity without a new row
	again, err := service.GetOrCreate(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, author.ID, again.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestGetOrCreate_UsernameValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "alice", false},
		{"digits and hyphen", "a-1", false},
		{"underscore inside", "a_b", false},
		{"surrounding whitespace trimmed", "  bob  ", false},
		{"single character", "x", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"leading hyphen", "-alice", true},
		{"trailing underscore", "alice_", true},
		{"inner space", "a b", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthorService(newMockRepository())
			_, err := service.GetOrCreate(context.Background(), tt.username)
			if tt.wantErr {
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetByUsername_EmptyIsNotFound(t *testing.T) {
	service := NewAuthorService(newMockRepository())

	_, err := service.GetByUsername(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID_NonPositiveIsNotFound(t *testing.T) {
	service := NewAuthorService(newMockRepository())

	_, err := service.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetByID(context.Background(), -4)
	assert.ErrorIs(t, err, ErrNotFound)
}
