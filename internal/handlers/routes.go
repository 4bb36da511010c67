package handlers

import (
	"net/http"

	"yatube/web"
)

// Routes builds the application mux wrapped in the common middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	static := http.StripPrefix("/static/", http.FileServerFS(web.Static()))
	mux.Handle("GET /static/{file}", static)

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /group/{slug}", h.GroupPosts)

	mux.HandleFunc("GET /new", h.RequireAuth(h.NewPost))
	mux.HandleFunc("POST /new", h.RequireAuth(h.NewPost))

	mux.HandleFunc("GET /auth/signup", h.Signup)
	mux.HandleFunc("POST /auth/signup", h.Signup)
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /auth/logout", h.Logout)
	mux.HandleFunc("POST /auth/logout", h.Logout)

	mux.HandleFunc("GET /about/author", h.AboutAuthor)
	mux.HandleFunc("GET /about/tech", h.AboutTech)

	mux.HandleFunc("GET /{username}/{$}", h.Profile)
	mux.HandleFunc("GET /{username}/{post_id}/{$}", h.PostView)
	mux.HandleFunc("GET /{username}/{post_id}/edit", h.RequireAuth(h.PostEdit))
	mux.HandleFunc("POST /{username}/{post_id}/edit", h.RequireAuth(h.PostEdit))

	mux.HandleFunc("/", h.NotFound)

	return WithRecover(h.log, WithLogging(h.log, h.loadUser(mux)))
}
