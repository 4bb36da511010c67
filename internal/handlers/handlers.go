package handlers

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"yatube/internal/auth"
	"yatube/internal/models"
	"yatube/internal/store"
	"yatube/web"
)

type Handler struct {
	store    *store.Store
	sessions *auth.Manager
	tpls     map[string]*template.Template
	log      *zap.Logger
}

func New(st *store.Store, sessions *auth.Manager, log *zap.Logger) (*Handler, error) {
	tpls, err := web.Templates()
	if err != nil {
		return nil, err
	}
	return &Handler{store: st, sessions: sessions, tpls: tpls, log: log}, nil
}

type ctxKey int

const userKey ctxKey = 0

// loadUser resolves the session cookie once per request and stores the
// user in the request context.
func (h *Handler) loadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := h.sessions.CurrentUserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		u, err := h.store.Users.ByID(r.Context(), uid)
		if err != nil {
			h.log.Debug("session user lookup failed", zap.Int64("user_id", uid), zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

func userFrom(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	t, ok := h.tpls[page]
	if !ok {
		h.serverError(w, r, errUnknownTemplate(page))
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	data["User"] = userFrom(r.Context())
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Yatube"
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "notfound", map[string]any{
		"Title": "Not Found",
		"Path":  r.URL.Path,
	})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type errUnknownTemplate string

func (e errUnknownTemplate) Error() string {
	return "handlers: unknown template " + string(e)
}
