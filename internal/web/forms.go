package web

import (
	"strconv"
	"strings"
)

// PostForm carries the submitted post fields back to the template when
// validation fails, so the author's input is never lost on re-render.
type PostForm struct {
	Errors  map[string]string
	Text    string
	GroupID string
}

// SelectedGroupID parses the optional group selection.
// An empty or malformed value means "no group".
func (f *PostForm) SelectedGroupID() *int64 {
	raw := strings.TrimSpace(f.GroupID)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// SetError records a field-level validation message
func (f *PostForm) SetError(field, message string) {
	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	f.Errors[field] = message
}

// CommentForm carries a submitted comment back to the detail page on
// validation failure
type CommentForm struct {
	Errors map[string]string
	Text   string
}

// SetError records a field-level validation message
func (f *CommentForm) SetError(field, message string) {
	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	f.Errors[field] = message
}

// LoginForm carries the submitted username back to the login page
type LoginForm struct {
	Errors   map[string]string
	Username string
}

// SetError records a field-level validation message
func (f *LoginForm) SetError(field, message string) {
	if f.Errors == nil {
		f.Errors = make(map[string]string)
	}
	f.Errors[field] = message
}
