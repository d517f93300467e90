package groups

import "errors"

var (
	// ErrNotFound is returned when no group exists with the given slug
	ErrNotFound = errors.New("group not found")
)

// IsNotFound checks if error is a group-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
