package store

import (
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: already exists")
	ErrInvalid   = errors.New("store: invalid value")
)

// Store groups the entity stores over one database handle.
type Store struct {
	Users  *UserStore
	Groups *GroupStore
	Posts  *PostStore
}

func New(db *sql.DB) *Store {
	return &Store{
		Users:  &UserStore{db: db},
		Groups: &GroupStore{db: db},
		Posts:  &PostStore{db: db},
	}
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
