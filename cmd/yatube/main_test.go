package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAdminCommands(t *testing.T) {
	t.Setenv("YATUBE_DB", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("PORT", "")
	t.Setenv("YATUBE_DEBUG", "")

	_, err := execute(t, "migrate")
	require.NoError(t, err)

	out, err := execute(t, "group", "create", "--title", "Cats", "--slug", "cats", "--description", "All about cats")
	require.NoError(t, err)
	assert.Contains(t, out, "/group/cats")

	_, err = execute(t, "group", "create", "--title", "Cats again", "--slug", "cats", "--description", "dup")
	assert.Error(t, err)

	out, err = execute(t, "group", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cats\tCats")

	out, err = execute(t, "user", "create", "--username", "leo", "--email", "leo@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "leo")

	out, err = execute(t, "user", "delete", "--username", "leo")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted user leo")

	_, err = execute(t, "user", "delete", "--username", "leo")
	assert.Error(t, err)
}

func TestBadConfigFails(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "migrate")
	assert.Error(t, err)
	cfgPath = ""
}
