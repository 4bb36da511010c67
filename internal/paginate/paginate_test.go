package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPages(t *testing.T) {
	assert.Equal(t, 1, New(0, 10).NumPages())
	assert.Equal(t, 1, New(10, 10).NumPages())
	assert.Equal(t, 2, New(13, 10).NumPages())
	assert.Equal(t, 3, New(11, 5).NumPages())
}

func TestPageClamping(t *testing.T) {
	p := New(13, 10)
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"2", 2},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"99", 2},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Page(tc.raw).Number)
		})
	}
}

func TestThirteenItems(t *testing.T) {
	p := New(13, 10)

	first := p.Page("1")
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 10, first.Len())
	assert.False(t, first.HasPrevious())
	assert.True(t, first.HasNext())

	second := p.Page("2")
	assert.Equal(t, 10, second.Offset())
	assert.Equal(t, 3, second.Len())
	assert.True(t, second.HasPrevious())
	assert.False(t, second.HasNext())
	assert.Equal(t, 1, second.PreviousNumber())
	assert.Equal(t, []int{1, 2}, second.Range())
}
