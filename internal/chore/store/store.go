package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/database"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

const selectChoreColumns = `
	id, name, description, icon, valuation, family_id, is_active, created_by, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanChore(s scanner) (*chore.Chore, error) {
	var c chore.Chore

	var valuation string

	if err := s.Scan(
		&c.ID, &c.Name, &c.Description, &c.Icon, &valuation, &c.FamilyID,
		&c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	v, err := decimal.NewFromString(valuation)
	if err != nil {
		return nil, fmt.Errorf("parsing valuation: %w", err)
	}

	c.Valuation = v

	return &c, nil
}

func (s *Store) CreateChores(ctx context.Context, chores []*chore.Chore) error {
	query := `
		INSERT INTO chores (name, description, icon, valuation, family_id, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, c := range chores {
		err := s.db.Conn(ctx).QueryRowContext(ctx, query,
			c.Name,
			c.Description,
			c.Icon,
			c.Valuation.StringFixed(2),
			c.FamilyID,
			c.IsActive,
			c.CreatedBy,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating chore: %w", err)
		}
	}

	return nil
}

func (s *Store) GetChore(ctx context.Context, id uuid.UUID) (*chore.Chore, error) {
	query := `SELECT ` + selectChoreColumns + ` FROM chores WHERE id = $1 AND is_active`

	c, err := scanChore(s.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, chore.ErrNotFound
		}

		return nil, fmt.Errorf("getting chore: %w", err)
	}

	return c, nil
}

func (s *Store) ListFamilyChores(ctx context.Context, familyID uuid.UUID) ([]*chore.Chore, error) {
	query := `SELECT ` + selectChoreColumns + `
		FROM chores
		WHERE family_id = $1 AND is_active
		ORDER BY created_at ASC`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("listing chores: %w", err)
	}
	defer rows.Close()

	var chores []*chore.Chore

	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning chore: %w", err)
		}

		chores = append(chores, c)
	}

	return chores, rows.Err()
}

func (s *Store) DeactivateChore(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE chores
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deactivating chore: %w", err)
	}

	return nil
}

func (s *Store) GetValuation(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT valuation FROM chores WHERE id = $1`

	var valuation string
	if err := s.db.Conn(ctx).QueryRowContext(ctx, query, id).Scan(&valuation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, chore.ErrNotFound
		}

		return decimal.Zero, fmt.Errorf("getting chore valuation: %w", err)
	}

	v, err := decimal.NewFromString(valuation)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing valuation: %w", err)
	}

	return v, nil
}
