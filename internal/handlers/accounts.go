package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"yatube/internal/auth"
	"yatube/internal/store"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "signup", map[string]any{
			"Title":    "Sign up",
			"Username": "",
			"Email":    "",
		})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	pass := r.FormValue("password")

	fail := func(status int, msg string) {
		h.render(w, r, status, "signup", map[string]any{
			"Title":    "Sign up",
			"Error":    msg,
			"Username": username,
			"Email":    email,
		})
	}

	if username == "" || email == "" || pass == "" {
		fail(http.StatusBadRequest, "All fields are required.")
		return
	}
	if strings.ContainsAny(username, "/?#%") {
		fail(http.StatusBadRequest, "Username may not contain / ? # or %.")
		return
	}

	hash, err := auth.HashPassword(pass)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	u, err := h.store.Users.Create(r.Context(), username, email, hash)
	if errors.Is(err, store.ErrDuplicate) {
		fail(http.StatusBadRequest, "Email or username already taken.")
		return
	} else if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.log.Info("user registered", zap.Int64("user_id", u.ID), zap.String("username", u.Username))
	http.Redirect(w, r, loginPath, http.StatusFound)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	next := r.FormValue("next")
	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "login", map[string]any{
			"Title": "Log in",
			"Email": "",
			"Next":  next,
		})
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	pass := r.FormValue("password")

	fail := func() {
		h.render(w, r, http.StatusUnauthorized, "login", map[string]any{
			"Title": "Log in",
			"Error": "Wrong email or password.",
			"Email": email,
			"Next":  next,
		})
	}

	u, err := h.store.Users.ByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		fail()
		return
	} else if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !auth.CheckPassword(pass, u.PasswordHash) {
		fail()
		return
	}

	if err := h.sessions.Create(r.Context(), w, u.ID); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		h.log.Warn("session destroy failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// safeNext only allows redirects to local paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func (h *Handler) AboutAuthor(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about_author", map[string]any{"Title": "About the author"})
}

func (h *Handler) AboutTech(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about_tech", map[string]any{"Title": "Technologies"})
}
