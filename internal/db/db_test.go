package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbc, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer dbc.Close()

	require.NoError(t, Migrate(ctx, dbc))
	require.NoError(t, Migrate(ctx, dbc))
}

func TestForeignKeysCascade(t *testing.T) {
	ctx := context.Background()
	dbc, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer dbc.Close()
	require.NoError(t, Migrate(ctx, dbc))

	var on int
	require.NoError(t, dbc.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on))
	require.Equal(t, 1, on)

	res, err := dbc.ExecContext(ctx, `INSERT INTO users(email,username,password_hash,created_at) VALUES('a@b.c','a','x',?)`, time.Now())
	require.NoError(t, err)
	uid, _ := res.LastInsertId()
	_, err = dbc.ExecContext(ctx, `INSERT INTO posts(text,pub_date,author_id) VALUES('t',?,?)`, time.Now(), uid)
	require.NoError(t, err)

	_, err = dbc.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, uid)
	require.NoError(t, err)

	var n int
	require.NoError(t, dbc.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n))
	require.Zero(t, n)
}

func TestPostRequiresExistingAuthor(t *testing.T) {
	ctx := context.Background()
	dbc, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer dbc.Close()
	require.NoError(t, Migrate(ctx, dbc))

	_, err = dbc.ExecContext(ctx, `INSERT INTO posts(text,pub_date,author_id) VALUES('t',?,42)`, time.Now())
	require.Error(t, err)
}
