package forms

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/models"
	"yatube/internal/store"
)

type fakeGroups map[int64]*models.Group

func (f fakeGroups) ByID(_ context.Context, id int64) (*models.Group, error) {
	if g, ok := f[id]; ok {
		return g, nil
	}
	return nil, store.ErrNotFound
}

type brokenGroups struct{}

func (brokenGroups) ByID(context.Context, int64) (*models.Group, error) {
	return nil, errors.New("disk on fire")
}

var groups = fakeGroups{1: {ID: 1, Title: "Cats", Slug: "cats"}}

func TestPostFormValid(t *testing.T) {
	f := NewPostForm(url.Values{"text": {"  hello  "}, "group": {"1"}})
	ok, err := f.Validate(context.Background(), groups)
	require.NoError(t, err)
	require.True(t, ok)

	var p models.Post
	f.Bind(&p)
	assert.Equal(t, "hello", p.Text)
	require.NotNil(t, p.GroupID)
	assert.Equal(t, int64(1), *p.GroupID)
	assert.Zero(t, p.AuthorID)
}

func TestPostFormWithoutGroup(t *testing.T) {
	f := NewPostForm(url.Values{"text": {"hello"}})
	ok, err := f.Validate(context.Background(), groups)
	require.NoError(t, err)
	require.True(t, ok)

	var p models.Post
	f.Bind(&p)
	assert.Nil(t, p.GroupID)
}

func TestPostFormErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    url.Values
		field string
		kind  ErrorKind
	}{
		{"empty text", url.Values{"text": {""}}, "text", MissingField},
		{"blank text", url.Values{"text": {"   "}}, "text", MissingField},
		{"unknown group", url.Values{"text": {"x"}, "group": {"42"}}, "group", InvalidReference},
		{"garbage group", url.Values{"text": {"x"}, "group": {"cats"}}, "group", InvalidReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewPostForm(tc.in)
			ok, err := f.Validate(context.Background(), groups)
			require.NoError(t, err)
			assert.False(t, ok)
			require.Len(t, f.Errors, 1)
			assert.Equal(t, tc.kind, f.Errors[0].Kind)
			assert.Equal(t, tc.field, f.Errors[0].Field)
			assert.NotEmpty(t, f.FieldErrors(tc.field))
		})
	}
}

func TestPostFormLookupFailure(t *testing.T) {
	f := NewPostForm(url.Values{"text": {"x"}, "group": {"1"}})
	_, err := f.Validate(context.Background(), brokenGroups{})
	assert.Error(t, err)
}

func TestPostFormBindPreservesIdentity(t *testing.T) {
	gid := int64(1)
	published := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &models.Post{
		ID:       7,
		Text:     "old",
		PubDate:  published,
		AuthorID: 3,
		GroupID:  &gid,
		Group:    groups[1],
	}

	f := NewPostForm(url.Values{"text": {"new"}})
	ok, err := f.Validate(context.Background(), groups)
	require.NoError(t, err)
	require.True(t, ok)
	f.Bind(p)

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, int64(3), p.AuthorID)
	assert.Equal(t, published, p.PubDate)
	assert.Equal(t, "new", p.Text)
	assert.Nil(t, p.GroupID)
	assert.Nil(t, p.Group)
}

func TestFromPost(t *testing.T) {
	gid := int64(1)
	f := FromPost(&models.Post{Text: "body", GroupID: &gid})
	assert.Equal(t, "body", f.Text)
	assert.True(t, f.SelectedGroup(1))
	assert.False(t, f.SelectedGroup(2))
}
