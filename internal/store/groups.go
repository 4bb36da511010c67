package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"yatube/internal/models"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 400
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type GroupStore struct {
	db *sql.DB
}

func ValidateGroup(g *models.Group) error {
	g.Title = strings.TrimSpace(g.Title)
	g.Slug = strings.TrimSpace(g.Slug)
	g.Description = strings.TrimSpace(g.Description)

	switch {
	case g.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalid)
	case utf8.RuneCountInString(g.Title) > maxTitleLen:
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalid, maxTitleLen)
	case !slugRe.MatchString(g.Slug):
		return fmt.Errorf("%w: slug must consist of letters, numbers, underscores or hyphens", ErrInvalid)
	case g.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalid)
	case utf8.RuneCountInString(g.Description) > maxDescriptionLen:
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalid, maxDescriptionLen)
	}
	return nil
}

func (s *GroupStore) Create(ctx context.Context, g *models.Group) error {
	if err := ValidateGroup(g); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO blog_groups(title,slug,description) VALUES(?,?,?)`,
		g.Title, g.Slug, g.Description)
	if isUniqueViolation(err) {
		return fmt.Errorf("store: create group %q: %w", g.Slug, ErrDuplicate)
	} else if err != nil {
		return fmt.Errorf("store: create group %q: %w", g.Slug, err)
	}
	g.ID, err = res.LastInsertId()
	return err
}

func (s *GroupStore) ByID(ctx context.Context, id int64) (*models.Group, error) {
	return s.one(ctx, `WHERE id = ?`, id)
}

func (s *GroupStore) BySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.one(ctx, `WHERE slug = ?`, slug)
}

func (s *GroupStore) one(ctx context.Context, where string, arg any) (*models.Group, error) {
	var g models.Group
	err := s.db.QueryRowContext(ctx, `SELECT id, title, slug, description FROM blog_groups `+where, arg).
		Scan(&g.ID, &g.Title, &g.Slug, &g.Description)
	if err != nil {
		return nil, fmt.Errorf("store: group: %w", notFound(err))
	}
	return &g, nil
}

// List returns all groups ordered by title.
func (s *GroupStore) List(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, slug, description FROM blog_groups ORDER BY title, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Title, &g.Slug, &g.Description); err != nil {
			return nil, err
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}
