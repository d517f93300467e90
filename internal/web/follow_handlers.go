package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/authors"
)

// FollowHandler creates a follow edge from the viewer to the named
// author. Self-follows and repeated clicks are silent no-ops: the
// response is always a redirect back to the profile.
// POST /profile/{username}/follow — requires authentication
func (h *Handlers) FollowHandler(w http.ResponseWriter, r *http.Request) {
	h.mutateFollow(w, r, true)
}

// UnfollowHandler removes the follow edge if present; absent edges are
// no-ops.
// POST /profile/{username}/unfollow — requires authentication
func (h *Handlers) UnfollowHandler(w http.ResponseWriter, r *http.Request) {
	h.mutateFollow(w, r, false)
}

func (h *Handlers) mutateFollow(w http.ResponseWriter, r *http.Request, follow bool) {
	username := chi.URLParam(r, "username")

	target, err := h.authorSvc.GetByUsername(r.Context(), username)
	if err != nil {
		if authors.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		slog.Error("failed to resolve follow target", "username", username, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	viewerID := middleware.ViewerID(r)
	if follow {
		err = h.followSvc.Follow(r.Context(), viewerID, target.ID)
	} else {
		err = h.followSvc.Unfollow(r.Context(), viewerID, target.ID)
	}
	if err != nil {
		slog.Error("failed to mutate follow edge", "viewer_id", viewerID, "target_id", target.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+target.Username, http.StatusFound)
}
