package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/web"
)

// RegisterWebRoutes mounts the server-rendered web interface.
// pageCache may be nil when redis is not configured; the global feed is
// then always rendered fresh.
func RegisterWebRoutes(
	r chi.Router,
	handlers *web.Handlers,
	auth *middleware.SessionAuth,
	pageCache *middleware.PageCache,
) {
	// Every route sees the viewer when a session exists
	r.Group(func(r chi.Router) {
		r.Use(auth.WithViewer)

		// Public listing views
		if pageCache != nil {
			r.With(pageCache.Middleware).Get("/", handlers.IndexHandler)
		} else {
			r.Get("/", handlers.IndexHandler)
		}
		r.Get("/group/{slug}", handlers.GroupHandler)
		r.Get("/profile/{username}", handlers.ProfileHandler)
		r.Get("/posts/{postID}", handlers.PostDetailHandler)
		r.Get("/media/*", handlers.MediaHandler)

		// Login flow
		r.Get("/auth/login", handlers.LoginFormHandler)
		r.Post("/auth/login", handlers.LoginSubmitHandler)
		r.Post("/auth/logout", handlers.LogoutHandler)

		// Authenticated views and mutations: anonymous requests are
		// redirected to the login page
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireViewer)

			r.Get("/follow", handlers.FollowingHandler)
			r.Get("/create", handlers.PostCreateFormHandler)
			r.Post("/create", handlers.PostCreateSubmitHandler)
			r.Get("/posts/{postID}/edit", handlers.PostEditFormHandler)
			r.Post("/posts/{postID}/edit", handlers.PostEditSubmitHandler)
			r.Post("/posts/{postID}/comment", handlers.AddCommentHandler)
			r.Post("/profile/{username}/follow", handlers.FollowHandler)
			r.Post("/profile/{username}/unfollow", handlers.UnfollowHandler)
		})
	})
}
