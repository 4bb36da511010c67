package forms

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"yatube/internal/models"
	"yatube/internal/store"
)

type ErrorKind int

const (
	MissingField ErrorKind = iota + 1
	InvalidReference
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case InvalidReference:
		return "invalid reference"
	}
	return "unknown"
}

type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

// GroupFinder resolves a group id submitted with the form.
type GroupFinder interface {
	ByID(ctx context.Context, id int64) (*models.Group, error)
}

// PostForm binds the text and group fields of a post.
type PostForm struct {
	Text   string
	Group  string
	Errors []*ValidationError

	groupID *int64
}

func NewPostForm(v url.Values) *PostForm {
	return &PostForm{
		Text:  v.Get("text"),
		Group: strings.TrimSpace(v.Get("group")),
	}
}

// FromPost returns a form prefilled with the current values of p.
func FromPost(p *models.Post) *PostForm {
	f := &PostForm{Text: p.Text}
	if p.GroupID != nil {
		f.Group = strconv.FormatInt(*p.GroupID, 10)
	}
	return f
}

// Validate checks the submitted fields. Lookup failures other than an unknown
// group are returned as the error; field problems are collected in f.Errors.
func (f *PostForm) Validate(ctx context.Context, groups GroupFinder) (bool, error) {
	f.Errors = nil
	f.groupID = nil

	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		f.addError(MissingField, "text", msgRequired)
	}

	if f.Group != "" {
		id, err := strconv.ParseInt(f.Group, 10, 64)
		if err != nil {
			f.addError(InvalidReference, "group", msgInvalidChoice)
		} else if _, err := groups.ByID(ctx, id); errors.Is(err, store.ErrNotFound) {
			f.addError(InvalidReference, "group", msgInvalidChoice)
		} else if err != nil {
			return false, err
		} else {
			f.groupID = &id
		}
	}
	return len(f.Errors) == 0, nil
}

// Bind copies the validated text and group onto p. Other fields, including
// the author, are left as they are.
func (f *PostForm) Bind(p *models.Post) {
	p.Text = f.Text
	p.GroupID = f.groupID
	if p.Group != nil && (f.groupID == nil || p.Group.ID != *f.groupID) {
		p.Group = nil
	}
}

func (f *PostForm) addError(kind ErrorKind, field, msg string) {
	f.Errors = append(f.Errors, &ValidationError{Kind: kind, Field: field, Message: msg})
}

// FieldErrors returns the messages attached to field, for templates.
func (f *PostForm) FieldErrors(field string) []string {
	var msgs []string
	for _, e := range f.Errors {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// SelectedGroup reports whether id is the group currently chosen in the form.
func (f *PostForm) SelectedGroup(id int64) bool {
	return f.Group == strconv.FormatInt(id, 10)
}
