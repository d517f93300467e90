package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_ThirteenItemsPageSizeTen(t *testing.T) {
	items := sequence(13)

	page1 := Paginate(items, 10, 1)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, 1, page1.Number)
	assert.Equal(t, 13, page1.TotalItems)
	assert.Equal(t, 2, page1.TotalPages)
	assert.False(t, page1.HasPrev)
	assert.True(t, page1.HasNext)

	page2 := Paginate(items, 10, 2)
	assert.Len(t, page2.Items, 3)
	assert.Equal(t, 2, page2.Number)
	assert.True(t, page2.HasPrev)
	assert.False(t, page2.HasNext)
}

func TestPaginate_ConcatenationReconstructsInput(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		pageSize int
	}{
		{"empty", 0, 10},
		{"single item", 1, 10},
		{"exact multiple", 30, 10},
		{"remainder", 13, 10},
		{"page size one", 7, 1},
		{"page larger than input", 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := sequence(tt.length)

			first := Paginate(items, tt.pageSize, 1)
			var rebuilt []int
			for n := 1; n <= first.TotalPages; n++ {
				page := Paginate(items, tt.pageSize, n)
				assert.Equal(t, n, page.Number)
				rebuilt = append(rebuilt, page.Items...)
			}

			require.Len(t, rebuilt, tt.length, "no gaps or duplicates")
			for i, v := range rebuilt {
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestPaginate_ClampsBeyondLastPage(t *testing.T) {
	items := sequence(13)

	page := Paginate(items, 10, 9999)
	assert.Equal(t, 2, page.Number, "far-beyond request returns the last page")
	assert.Len(t, page.Items, 3)
}

func TestPaginate_ClampsBelowFirstPage(t *testing.T) {
	items := sequence(13)

	for _, requested := range []int{0, -1, -100} {
		page := Paginate(items, 10, requested)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Items, 10)
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	page := Paginate([]int{}, 10, 3)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestPaginate_DegeneratePageSize(t *testing.T) {
	page := Paginate(sequence(3), 0, 1)
	assert.Len(t, page.Items, 1, "page size below 1 is treated as 1")
	assert.Equal(t, 3, page.TotalPages)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"2.5", 1},
		{"3", 3},
		{"-2", -2}, // clamped later by Paginate
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPageNavigationNumbers(t *testing.T) {
	page := Paginate(sequence(30), 10, 2)
	assert.Equal(t, 1, page.PrevNumber())
	assert.Equal(t, 3, page.NextNumber())
}
