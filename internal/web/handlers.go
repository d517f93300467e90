package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/authors"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/feed"
	"Inkwell/internal/core/follows"
	"Inkwell/internal/core/groups"
	"Inkwell/internal/core/images"
	"Inkwell/internal/core/pagination"
	"Inkwell/internal/core/posts"
)

// Handlers provides the HTTP handlers for the Inkwell web interface
type Handlers struct {
	templates  *Templates
	feedSvc    feed.Service
	postSvc    posts.Service
	commentSvc comments.Service
	followSvc  follows.Service
	authorSvc  authors.Service
	groupSvc   groups.Service
	imageSvc   images.Service
	auth       *middleware.SessionAuth
	pageSize   int
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
// imageSvc may be nil when object storage is disabled; post images are
// then skipped rather than failing the request.
func NewHandlers(
	templates *Templates,
	feedSvc feed.Service,
	postSvc posts.Service,
	commentSvc comments.Service,
	followSvc follows.Service,
	authorSvc authors.Service,
	groupSvc groups.Service,
	imageSvc images.Service,
	auth *middleware.SessionAuth,
	pageSize int,
) *Handlers {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &Handlers{
		templates:  templates,
		feedSvc:    feedSvc,
		postSvc:    postSvc,
		commentSvc: commentSvc,
		followSvc:  followSvc,
		authorSvc:  authorSvc,
		groupSvc:   groupSvc,
		imageSvc:   imageSvc,
		auth:       auth,
		pageSize:   pageSize,
	}
}

// FeedPageData holds data for the listing templates
type FeedPageData struct {
	Viewer      *authors.Author
	Group       *groups.Group
	Profile     *authors.Profile
	Page        pagination.Page[*posts.PostView]
	Title       string
	BasePath    string
	IsFollowing bool
}

// IndexHandler renders the global feed
// GET /
func (h *Handlers) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderNotFound(w, r)
		return
	}
	h.renderFeed(w, r, feed.Global(), "Latest posts", "/")
}

// GroupHandler renders a group's feed
// GET /group/{slug}
func (h *Handlers) GroupHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	h.renderFeed(w, r, feed.ByGroup(slug), "Group", "/group/"+slug)
}

// ProfileHandler renders an author's profile and posts
// GET /profile/{username}
func (h *Handlers) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	h.renderFeed(w, r, feed.ByAuthor(username), "Profile", "/profile/"+username)
}

// FollowingHandler renders the personalized feed of followed authors
// GET /follow — requires authentication
func (h *Handlers) FollowingHandler(w http.ResponseWriter, r *http.Request) {
	h.renderFeed(w, r, feed.Following(), "Authors you follow", "/follow")
}

// renderFeed composes the scoped feed, slices the requested page and
// renders the matching listing template
func (h *Handlers) renderFeed(w http.ResponseWriter, r *http.Request, scope feed.Scope, title, basePath string) {
	viewer := middleware.GetViewer(r)

	result, err := h.feedSvc.ComposeFeed(r.Context(), scope, middleware.ViewerID(r))
	if err != nil {
		h.handleFeedError(w, r, err)
		return
	}

	page := pagination.Paginate(result.Posts, h.pageSize, pagination.ParsePage(r.URL.Query().Get("page")))

	data := FeedPageData{
		Viewer:      viewer,
		Group:       result.Group,
		Profile:     result.Profile,
		Page:        page,
		Title:       title,
		BasePath:    basePath,
		IsFollowing: result.IsFollowing,
	}
	if result.Group != nil {
		data.Title = result.Group.Title
	}
	if result.Profile != nil {
		data.Title = result.Profile.Author.Username
	}

	template := templateForScope(scope.Kind)
	if err := h.templates.Render(w, template, data); err != nil {
		slog.Error("failed to render feed template", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func templateForScope(kind feed.ScopeKind) string {
	switch kind {
	case feed.ScopeGroup:
		return "group.html"
	case feed.ScopeAuthor:
		return "profile.html"
	case feed.ScopeFollowing:
		return "following.html"
	default:
		return "index.html"
	}
}

// handleFeedError maps composer errors onto boundary responses:
// unknown scope targets are terminal 404s, anonymous personalized-feed
// requests redirect to login.
func (h *Handlers) handleFeedError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, feed.ErrAuthRequired):
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	case authors.IsNotFound(err) || groups.IsNotFound(err):
		h.renderNotFound(w, r)
	default:
		slog.Error("failed to compose feed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFoundData holds data for the 404 page
type NotFoundData struct {
	Viewer *authors.Author
}

func (h *Handlers) renderNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	data := NotFoundData{Viewer: middleware.GetViewer(r)}
	if err := h.templates.Render(w, "notfound.html", data); err != nil {
		slog.Error("failed to render 404 template", "error", err)
	}
}
