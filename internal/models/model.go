package models

import (
	"strings"
	"time"
)

type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Group struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}

func (g *Group) String() string {
	return g.Title
}

// Post is a single blog entry. Author and Group are filled from joins on read.
type Post struct {
	ID       int64
	Text     string
	PubDate  time.Time
	AuthorID int64
	Author   string
	GroupID  *int64
	Group    *Group
}

const (
	previewWords = 10
	previewRunes = 15
)

// Preview returns a short display form of the post text. The post is not modified.
func (p *Post) Preview() string {
	words := strings.Fields(p.Text)
	s := strings.Join(words, " ")
	if len(words) > previewWords {
		s = strings.Join(words[:previewWords], " ") + "…"
	}
	r := []rune(s)
	if len(r) > previewRunes {
		r = r[:previewRunes]
	}
	return string(r)
}

func (p *Post) String() string {
	return p.Preview()
}

// InGroup reports whether the post is assigned to the group with the given id.
func (p *Post) InGroup(id int64) bool {
	return p.GroupID != nil && *p.GroupID == id
}
