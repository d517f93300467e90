package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"Inkwell/internal/core/authors"
)

// Context keys for storing viewer information
type contextKey string

const viewerKey contextKey = "viewer"

const (
	sessionName      = "inkwell_session"
	sessionAuthorKey = "author_id"

	// MinSessionSecretLength is the minimum cookie secret size accepted
	MinSessionSecretLength = 32
)

// SessionAuth loads the viewer identity from the session cookie.
// The viewer is the only identity the core trusts: author IDs on
// mutations are always taken from here, never from form input.
type SessionAuth struct {
	store     *sessions.CookieStore
	authorSvc authors.Service
	loginURL  string
}

// NewSessionAuth creates the session-backed identity provider
func NewSessionAuth(secret string, authorSvc authors.Service, loginURL string) (*SessionAuth, error) {
	if len(secret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionAuth{store: store, authorSvc: authorSvc, loginURL: loginURL}, nil
}

// WithViewer loads the viewer into the request context when a valid
// session exists. Anonymous requests continue without a viewer.
func (m *SessionAuth) WithViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := m.resolveViewer(r)
		if viewer != nil {
			ctx := context.WithValue(r.Context(), viewerKey, viewer)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireViewer ensures the request carries an authenticated viewer.
// Anonymous requests are redirected to the login page, never failed.
func (m *SessionAuth) RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := m.resolveViewer(r)
		if viewer == nil {
			http.Redirect(w, r, m.loginURL, http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), viewerKey, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SignIn records the author in the session cookie
func (m *SessionAuth) SignIn(w http.ResponseWriter, r *http.Request, author *authors.Author) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[sessionAuthorKey] = author.ID
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut clears the session cookie
func (m *SessionAuth) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (m *SessionAuth) resolveViewer(r *http.Request) *authors.Author {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A tampered or stale cookie is treated as anonymous
		slog.Debug("invalid session cookie", "error", err)
		return nil
	}

	id, ok := session.Values[sessionAuthorKey].(int64)
	if !ok || id <= 0 {
		return nil
	}

	viewer, err := m.authorSvc.GetByID(r.Context(), id)
	if err != nil {
		slog.Warn("session references unknown author", "author_id", id, "error", err)
		return nil
	}
	return viewer
}

// GetViewer returns the authenticated viewer, or nil for anonymous
func GetViewer(r *http.Request) *authors.Author {
	viewer, _ := r.Context().Value(viewerKey).(*authors.Author)
	return viewer
}

// ViewerID returns the authenticated viewer's ID, or 0 for anonymous
func ViewerID(r *http.Request) int64 {
	if viewer := GetViewer(r); viewer != nil {
		return viewer.ID
	}
	return 0
}
