package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/authors"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/groups"
	"Inkwell/internal/core/posts"
)

// maxUploadBytes bounds post image uploads
const maxUploadBytes = 10 << 20

// PostDetailData holds data for the post detail template
type PostDetailData struct {
	Viewer      *authors.Author
	Post        *posts.PostView
	Comments    []*comments.CommentView
	CommentForm CommentForm
	CanEdit     bool
}

// PostFormData holds data for the create/edit form template
type PostFormData struct {
	Viewer *authors.Author
	Form   PostForm
	Groups []*groups.Group
	PostID int64
	IsEdit bool
}

// PostDetailHandler renders a post with its comments and comment form
// GET /posts/{postID}
func (h *Handlers) PostDetailHandler(w http.ResponseWriter, r *http.Request) {
	h.renderPostDetail(w, r, CommentForm{}, http.StatusOK)
}

func (h *Handlers) renderPostDetail(w http.ResponseWriter, r *http.Request, form CommentForm, status int) {
	postID := parseID(chi.URLParam(r, "postID"))

	view, err := h.postSvc.GetPostView(r.Context(), postID)
	if err != nil {
		if posts.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		slog.Error("failed to load post", "post_id", postID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	commentList, err := h.commentSvc.ListForPost(r.Context(), postID)
	if err != nil {
		slog.Error("failed to load comments", "post_id", postID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	viewer := middleware.GetViewer(r)
	data := PostDetailData{
		Viewer:      viewer,
		Post:        view,
		Comments:    commentList,
		CommentForm: form,
		CanEdit:     viewer != nil && view.Author.ID == viewer.ID,
	}

	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	if err := h.templates.Render(w, "post_detail.html", data); err != nil {
		slog.Error("failed to render post detail", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// PostCreateFormHandler renders the empty post form
// GET /create — requires authentication
func (h *Handlers) PostCreateFormHandler(w http.ResponseWriter, r *http.Request) {
	h.renderPostForm(w, r, PostForm{}, 0, http.StatusOK)
}

// PostCreateSubmitHandler creates a new post from the submitted form.
// The author is always the session viewer; client input never chooses it.
// POST /create — requires authentication
func (h *Handlers) PostCreateSubmitHandler(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetViewer(r)

	form, imageKey, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	post, err := h.postSvc.CreatePost(r.Context(), posts.CreatePostRequest{
		Text:     form.Text,
		AuthorID: viewer.ID,
		GroupID:  form.SelectedGroupID(),
		ImageKey: imageKey,
	})
	if err != nil {
		var valErr *posts.ValidationError
		if errors.As(err, &valErr) {
			form.SetError(valErr.Field, valErr.Message)
			h.renderPostForm(w, r, form, 0, http.StatusUnprocessableEntity)
			return
		}
		slog.Error("failed to create post", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_ = post
	http.Redirect(w, r, "/profile/"+viewer.Username, http.StatusFound)
}

// PostEditFormHandler renders the edit form pre-filled with the post.
// Non-authors are silently redirected to the post's read view.
// GET /posts/{postID}/edit — requires authentication
func (h *Handlers) PostEditFormHandler(w http.ResponseWriter, r *http.Request) {
	postID := parseID(chi.URLParam(r, "postID"))

	post, err := h.postSvc.GetPost(r.Context(), postID)
	if err != nil {
		if posts.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		slog.Error("failed to load post for edit", "post_id", postID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if posts.AuthorizeEdit(post, middleware.ViewerID(r)) != posts.EditAllowed {
		http.Redirect(w, r, postPath(postID), http.StatusFound)
		return
	}

	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.GroupID = strconv.FormatInt(*post.GroupID, 10)
	}
	h.renderPostForm(w, r, form, postID, http.StatusOK)
}

// PostEditSubmitHandler applies an edit to an existing post
// POST /posts/{postID}/edit — requires authentication
func (h *Handlers) PostEditSubmitHandler(w http.ResponseWriter, r *http.Request) {
	postID := parseID(chi.URLParam(r, "postID"))

	form, imageKey, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	_, err := h.postSvc.UpdatePost(r.Context(), posts.UpdatePostRequest{
		PostID:   postID,
		EditorID: middleware.ViewerID(r),
		Text:     form.Text,
		GroupID:  form.SelectedGroupID(),
		ImageKey: imageKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrNotAuthor):
			// Silent refusal: probing clients learn nothing
			http.Redirect(w, r, postPath(postID), http.StatusFound)
		case posts.IsNotFound(err):
			h.renderNotFound(w, r)
		default:
			var valErr *posts.ValidationError
			if errors.As(err, &valErr) {
				form.SetError(valErr.Field, valErr.Message)
				h.renderPostForm(w, r, form, postID, http.StatusUnprocessableEntity)
				return
			}
			slog.Error("failed to update post", "post_id", postID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, postPath(postID), http.StatusFound)
}

// AddCommentHandler appends a comment to a post. Author and parent are
// taken from the session and the route, never from form input.
// POST /posts/{postID}/comment — requires authentication
func (h *Handlers) AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID := parseID(chi.URLParam(r, "postID"))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := CommentForm{Text: r.PostFormValue("text")}

	_, err := h.commentSvc.CreateComment(r.Context(), comments.CreateCommentRequest{
		Text:     form.Text,
		PostID:   postID,
		AuthorID: middleware.ViewerID(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrPostNotFound):
			h.renderNotFound(w, r)
		default:
			var valErr *comments.ValidationError
			if errors.As(err, &valErr) {
				// Fold the validation failure back into the detail
				// page; the submitted text is preserved in the form
				form.SetError(valErr.Field, valErr.Message)
				h.renderPostDetail(w, r, form, http.StatusUnprocessableEntity)
				return
			}
			slog.Error("failed to create comment", "post_id", postID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, postPath(postID), http.StatusFound)
}

// MediaHandler redirects to a presigned URL for a post image
// GET /media/*
func (h *Handlers) MediaHandler(w http.ResponseWriter, r *http.Request) {
	if h.imageSvc == nil {
		h.renderNotFound(w, r)
		return
	}

	key := chi.URLParam(r, "*")
	url, err := h.imageSvc.ResolveURL(r.Context(), key)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// parsePostForm reads the multipart post form and uploads the optional
// image. Returns ok=false after writing a response on hard failures.
func (h *Handlers) parsePostForm(w http.ResponseWriter, r *http.Request) (PostForm, *string, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return PostForm{}, nil, false
	}

	form := PostForm{
		Text:    r.PostFormValue("text"),
		GroupID: r.PostFormValue("group"),
	}

	var imageKey *string
	file, header, err := r.FormFile("image")
	if err == nil {
		defer func() { _ = file.Close() }()

		if h.imageSvc == nil {
			slog.Warn("image upload skipped: object storage disabled")
			return form, nil, true
		}

		key, uploadErr := h.imageSvc.Upload(r.Context(), file, header.Size, header.Header.Get("Content-Type"))
		if uploadErr != nil {
			form.SetError("image", "could not store the image, try a jpeg/png/gif/webp")
			h.renderPostForm(w, r, form, parseID(chi.URLParam(r, "postID")), http.StatusUnprocessableEntity)
			return form, nil, false
		}
		imageKey = &key
	}

	return form, imageKey, true
}

func (h *Handlers) renderPostForm(w http.ResponseWriter, r *http.Request, form PostForm, postID int64, status int) {
	groupList, err := h.groupSvc.List(r.Context())
	if err != nil {
		slog.Error("failed to list groups", "error", err)
		groupList = nil
	}

	data := PostFormData{
		Viewer: middleware.GetViewer(r),
		Form:   form,
		Groups: groupList,
		PostID: postID,
		IsEdit: postID > 0,
	}

	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	if err := h.templates.Render(w, "post_form.html", data); err != nil {
		slog.Error("failed to render post form", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func postPath(postID int64) string {
	return "/posts/" + strconv.FormatInt(postID, 10)
}

// parseID interprets a numeric route parameter; malformed values yield
// 0, which downstream lookups report as not found
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
