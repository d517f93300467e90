// Package pagination slices an ordered result set into fixed-size pages
// with boundary-safe navigation. Malformed or out-of-range page numbers
// are normal, recoverable input: they clamp, they never error.
package pagination

import "strconv"

// DefaultPageSize is the process-wide page size used when the
// POSTS_PER_PAGE configuration is absent.
const DefaultPageSize = 10

// Page is a bounded slice of an ordered result set plus navigation
// metadata. Concatenating pages 1..TotalPages reproduces the full input
// exactly once each.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"number"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// PrevNumber returns the page number preceding this one.
// Only meaningful when HasPrev is true.
func (p Page[T]) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the page number following this one.
// Only meaningful when HasNext is true.
func (p Page[T]) NextNumber() int { return p.Number + 1 }

// Paginate slices items into the requested page.
// pageSize values below 1 are treated as 1. Requested pages below 1
// clamp to the first page; requests beyond the last page clamp to the
// last page. An empty input yields a single empty page.
func Paginate[T any](items []T, pageSize, requested int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
}

// ParsePage interprets a raw page query parameter. Absent or
// non-numeric values default to the first page.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
