package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"yatube/internal/models"
)

// Filter narrows post queries. Zero fields are ignored.
type Filter struct {
	AuthorID int64
	GroupID  int64
}

func (f Filter) where() (string, []any) {
	var conds []string
	var args []any
	if f.AuthorID != 0 {
		conds = append(conds, "p.author_id = ?")
		args = append(args, f.AuthorID)
	}
	if f.GroupID != 0 {
		conds = append(conds, "p.group_id = ?")
		args = append(args, f.GroupID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

const postSelect = `SELECT p.id, p.text, p.pub_date, p.author_id, u.username,
	p.group_id, g.title, g.slug, g.description
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN blog_groups g ON g.id = p.group_id`

type PostStore struct {
	db *sql.DB
}

// Create inserts p and fills in its ID and PubDate.
func (s *PostStore) Create(ctx context.Context, p *models.Post) error {
	if p.AuthorID == 0 {
		return fmt.Errorf("%w: post has no author", ErrInvalid)
	}
	p.PubDate = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `INSERT INTO posts(text,pub_date,author_id,group_id) VALUES(?,?,?,?)`,
		p.Text, p.PubDate, p.AuthorID, nullID(p.GroupID))
	if err != nil {
		return fmt.Errorf("store: create post: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

// Update writes the text and group of p. No other column is touched.
func (s *PostStore) Update(ctx context.Context, p *models.Post) error {
	res, err := s.db.ExecContext(ctx, `UPDATE posts SET text = ?, group_id = ? WHERE id = ?`,
		p.Text, nullID(p.GroupID), p.ID)
	if err != nil {
		return fmt.Errorf("store: update post %d: %w", p.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("store: update post %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

// Get returns the post with the given id only if it belongs to authorID.
func (s *PostStore) Get(ctx context.Context, id, authorID int64) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, postSelect+` WHERE p.id = ? AND p.author_id = ?`, id, authorID)
	p, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("store: post %d: %w", id, notFound(err))
	}
	return p, nil
}

// List returns posts newest first. A non-positive limit returns every match.
func (s *PostStore) List(ctx context.Context, f Filter, limit, offset int) ([]*models.Post, error) {
	where, args := f.where()
	if limit <= 0 {
		limit = -1
	}
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, postSelect+where+` ORDER BY p.pub_date DESC, p.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *PostStore) Count(ctx context.Context, f Filter) (int, error) {
	where, args := f.where()
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count posts: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(sc scanner) (*models.Post, error) {
	var (
		p       models.Post
		groupID sql.NullInt64
		title   sql.NullString
		slug    sql.NullString
		descr   sql.NullString
	)
	err := sc.Scan(&p.ID, &p.Text, &p.PubDate, &p.AuthorID, &p.Author,
		&groupID, &title, &slug, &descr)
	if err != nil {
		return nil, err
	}
	if groupID.Valid {
		id := groupID.Int64
		p.GroupID = &id
		p.Group = &models.Group{ID: id, Title: title.String, Slug: slug.String, Description: descr.String}
	}
	return &p, nil
}

func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
