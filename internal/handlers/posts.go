package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"yatube/internal/forms"
	"yatube/internal/models"
	"yatube/internal/paginate"
	"yatube/internal/store"
)

const (
	indexPerPage   = 10
	groupPerPage   = 10
	groupRecentCap = 12
	profilePerPage = 5
)

func postURL(username string, id int64) string {
	return fmt.Sprintf("/%s/%d/", username, id)
}

// pageOf counts the posts matching f and loads the requested page of them.
func (h *Handler) pageOf(ctx context.Context, f store.Filter, perPage int, raw string) ([]*models.Post, *paginate.Page, error) {
	count, err := h.store.Posts.Count(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	page := paginate.New(count, perPage).Page(raw)
	posts, err := h.store.Posts.List(ctx, f, page.Limit(), page.Offset())
	if err != nil {
		return nil, nil, err
	}
	return posts, page, nil
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	posts, page, err := h.pageOf(r.Context(), store.Filter{}, indexPerPage, r.URL.Query().Get("page"))
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "index", map[string]any{
		"Title": "Latest posts",
		"Posts": posts,
		"Page":  page,
	})
}

func (h *Handler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	group, err := h.store.Groups.BySlug(ctx, r.PathValue("slug"))
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return
	} else if err != nil {
		h.serverError(w, r, err)
		return
	}

	f := store.Filter{GroupID: group.ID}
	recent, err := h.store.Posts.List(ctx, f, groupRecentCap, 0)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	posts, page, err := h.pageOf(ctx, f, groupPerPage, r.URL.Query().Get("page"))
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "group", map[string]any{
		"Title":  group.Title,
		"Group":  group,
		"Recent": recent,
		"Posts":  posts,
		"Page":   page,
	})
}

// author looks up the {username} path value, answering 404 itself when it
// does not exist.
func (h *Handler) author(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	u, err := h.store.Users.ByUsername(r.Context(), r.PathValue("username"))
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return nil, false
	} else if err != nil {
		h.serverError(w, r, err)
		return nil, false
	}
	return u, true
}

// authorPost resolves {username} and {post_id} together. A post written by
// someone else is treated as missing.
func (h *Handler) authorPost(w http.ResponseWriter, r *http.Request) (*models.User, *models.Post, bool) {
	author, ok := h.author(w, r)
	if !ok {
		return nil, nil, false
	}
	id, err := strconv.ParseInt(r.PathValue("post_id"), 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return nil, nil, false
	}
	post, err := h.store.Posts.Get(r.Context(), id, author.ID)
	if errors.Is(err, store.ErrNotFound) {
		h.NotFound(w, r)
		return nil, nil, false
	} else if err != nil {
		h.serverError(w, r, err)
		return nil, nil, false
	}
	return author, post, true
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	author, ok := h.author(w, r)
	if !ok {
		return
	}
	posts, page, err := h.pageOf(r.Context(), store.Filter{AuthorID: author.ID}, profilePerPage, r.URL.Query().Get("page"))
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "profile", map[string]any{
		"Title":  author.Username,
		"Author": author,
		"Count":  page.Count(),
		"Posts":  posts,
		"Page":   page,
	})
}

func (h *Handler) PostView(w http.ResponseWriter, r *http.Request) {
	author, post, ok := h.authorPost(w, r)
	if !ok {
		return
	}
	count, err := h.store.Posts.Count(r.Context(), store.Filter{AuthorID: author.ID})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	user := userFrom(r.Context())
	h.render(w, r, http.StatusOK, "post", map[string]any{
		"Title":   post.Preview(),
		"Author":  author,
		"Post":    post,
		"Count":   count,
		"CanEdit": user != nil && user.ID == author.ID,
	})
}

func (h *Handler) renderPostForm(w http.ResponseWriter, r *http.Request, form *forms.PostForm, isEdit bool) {
	groups, err := h.store.Groups.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	title := "New post"
	if isEdit {
		title = "Edit post"
	}
	h.render(w, r, http.StatusOK, "new", map[string]any{
		"Title":  title,
		"Form":   form,
		"Groups": groups,
		"IsEdit": isEdit,
	})
}

func (h *Handler) NewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderPostForm(w, r, &forms.PostForm{}, false)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	form := forms.NewPostForm(r.PostForm)
	valid, err := form.Validate(ctx, h.store.Groups)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !valid {
		h.renderPostForm(w, r, form, false)
		return
	}

	user := userFrom(ctx)
	post := &models.Post{AuthorID: user.ID}
	form.Bind(post)
	if err := h.store.Posts.Create(ctx, post); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.log.Info("post created", zap.Int64("post_id", post.ID), zap.String("author", user.Username))
	http.Redirect(w, r, "/", http.StatusFound)
}

// PostEdit lets the author change the text and group of a post. Anyone else
// is sent back to the post page.
func (h *Handler) PostEdit(w http.ResponseWriter, r *http.Request) {
	author, post, ok := h.authorPost(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if user := userFrom(ctx); user == nil || user.ID != author.ID {
		http.Redirect(w, r, postURL(author.Username, post.ID), http.StatusFound)
		return
	}

	if r.Method != http.MethodPost {
		h.renderPostForm(w, r, forms.FromPost(post), true)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := forms.NewPostForm(r.PostForm)
	valid, err := form.Validate(ctx, h.store.Groups)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !valid {
		h.renderPostForm(w, r, form, true)
		return
	}

	form.Bind(post)
	if err := h.store.Posts.Update(ctx, post); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.log.Info("post updated", zap.Int64("post_id", post.ID), zap.String("author", author.Username))
	http.Redirect(w, r, postURL(author.Username, post.ID), http.StatusFound)
}
