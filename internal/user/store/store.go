package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/user"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

const selectUserColumns = `
	id, username, name, surname, family_id, password, is_active, is_superuser, created_at, updated_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var surname sql.NullString

	if err := s.Scan(
		&u.ID, &u.Username, &u.Name, &surname, &u.FamilyID, &u.Password,
		&u.IsActive, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.Surname = surname.String

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, name, surname, password, is_active, is_superuser, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query,
		u.Username,
		u.Name,
		u.Surname,
		u.Password,
		u.IsActive,
		u.IsSuperuser,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "users_username_key") {
			return user.ErrUsernameTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1 AND is_active`

	u, err := scanUser(s.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE username = $1 AND is_active`

	u, err := scanUser(s.db.Conn(ctx).QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by username: %w", err)
	}

	return u, nil
}

func (s *Store) SetFamily(ctx context.Context, id uuid.UUID, familyID *uuid.UUID) error {
	query := `
		UPDATE users
		SET family_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, familyID, id); err != nil {
		return fmt.Errorf("setting user family: %w", err)
	}

	return nil
}
