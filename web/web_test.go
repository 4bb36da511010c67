package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tpls, err := Templates()
	require.NoError(t, err)
	for _, name := range Pages {
		tpl, ok := tpls[name]
		require.True(t, ok, name)
		assert.NotNil(t, tpl.Lookup("base"), name)
		assert.NotNil(t, tpl.Lookup("content"), name)
	}
}

func TestStatic(t *testing.T) {
	data, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
