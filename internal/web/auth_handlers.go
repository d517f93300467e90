package web

import (
	"errors"
	"log/slog"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/authors"
)

// LoginData holds data for the login template
type LoginData struct {
	Viewer *authors.Author
	Form   LoginForm
}

// LoginFormHandler renders the login page
// GET /auth/login
func (h *Handlers) LoginFormHandler(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, LoginForm{}, http.StatusOK)
}

// LoginSubmitHandler signs the viewer in, registering the username on
// first use. The heavy-duty identity provider lives outside this core;
// this flow only has to supply a stable author identity per session.
// POST /auth/login
func (h *Handlers) LoginSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := LoginForm{Username: r.PostFormValue("username")}

	author, err := h.authorSvc.GetOrCreate(r.Context(), form.Username)
	if err != nil {
		var valErr *authors.ValidationError
		if errors.As(err, &valErr) {
			form.SetError(valErr.Field, valErr.Message)
			h.renderLogin(w, r, form, http.StatusUnprocessableEntity)
			return
		}
		slog.Error("failed to sign in", "username", form.Username, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.auth.SignIn(w, r, author); err != nil {
		slog.Error("failed to save session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// LogoutHandler clears the session
// POST /auth/logout
func (h *Handlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.SignOut(w, r); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) renderLogin(w http.ResponseWriter, r *http.Request, form LoginForm, status int) {
	data := LoginData{
		Viewer: middleware.GetViewer(r),
		Form:   form,
	}
	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	if err := h.templates.Render(w, "login.html", data); err != nil {
		slog.Error("failed to render login page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
