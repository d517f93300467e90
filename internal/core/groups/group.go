package groups

// Group is a named, sluggable topic tag. Posts may optionally belong
// to one group; the slug is the URL-safe identifier used in feed routes.
type Group struct {
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	ID          int64  `json:"id" db:"id"`
}
