package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"yatube/internal/models"
)

type UserStore struct {
	db *sql.DB
}

func (s *UserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", ErrInvalid)
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `INSERT INTO users(email,username,password_hash,created_at) VALUES(?,?,?,?)`,
		email, username, passwordHash, now)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("store: create user %q: %w", username, ErrDuplicate)
	} else if err != nil {
		return nil, fmt.Errorf("store: create user %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:           id,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

func (s *UserStore) ByID(ctx context.Context, id int64) (*models.User, error) {
	return s.one(ctx, `WHERE id = ?`, id)
}

// ByUsername returns ErrNotFound when no user has that username.
func (s *UserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.one(ctx, `WHERE username = ?`, username)
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.one(ctx, `WHERE email = ?`, email)
}

func (s *UserStore) one(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `SELECT id, email, username, password_hash, created_at FROM users `+where, arg).
		Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("store: user: %w", notFound(err))
	}
	return &u, nil
}

// Delete removes the user together with their posts and sessions in one transaction.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE author_id = ?`, id); err != nil {
		return fmt.Errorf("store: delete posts of user %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, id); err != nil {
		return fmt.Errorf("store: delete sessions of user %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete user %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("store: delete user %d: %w", id, ErrNotFound)
	}
	return tx.Commit()
}
