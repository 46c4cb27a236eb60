package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/completion"
	"github.com/PANATARA/chorebank/internal/database"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

const selectCompletionColumns = `
	id, chore_id, family_id, completed_by_id, status, message, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanCompletion(s scanner) (*completion.ChoreCompletion, error) {
	var c completion.ChoreCompletion

	var status string

	if err := s.Scan(
		&c.ID, &c.ChoreID, &c.FamilyID, &c.CompletedBy, &status, &c.Message,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = completion.Status(status)

	return &c, nil
}

func (s *Store) CreateCompletion(ctx context.Context, c *completion.ChoreCompletion) error {
	query := `
		INSERT INTO chore_completions (chore_id, family_id, completed_by_id, status, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query,
		c.ChoreID,
		c.FamilyID,
		c.CompletedBy,
		c.Status,
		c.Message,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating chore completion: %w", err)
	}

	return nil
}

func (s *Store) GetCompletion(ctx context.Context, id uuid.UUID) (*completion.ChoreCompletion, error) {
	query := `SELECT ` + selectCompletionColumns + ` FROM chore_completions WHERE id = $1`

	return s.getCompletion(ctx, query, id)
}

func (s *Store) GetCompletionForUpdate(ctx context.Context, id uuid.UUID) (*completion.ChoreCompletion, error) {
	query := `SELECT ` + selectCompletionColumns + ` FROM chore_completions WHERE id = $1 FOR UPDATE`

	return s.getCompletion(ctx, query, id)
}

func (s *Store) getCompletion(ctx context.Context, query string, id uuid.UUID) (*completion.ChoreCompletion, error) {
	c, err := scanCompletion(s.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, completion.ErrNotFound
		}

		return nil, fmt.Errorf("getting chore completion: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateCompletionStatus(ctx context.Context, id uuid.UUID, status completion.Status) error {
	query := `
		UPDATE chore_completions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating completion status: %w", err)
	}

	return nil
}

func (s *Store) CreateConfirmations(ctx context.Context, completionID uuid.UUID, userIDs []uuid.UUID) error {
	query := `
		INSERT INTO chore_confirmations (chore_completion_id, user_id, status, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	for _, userID := range userIDs {
		if _, err := s.db.Conn(ctx).ExecContext(ctx, query, completionID, userID, completion.StatusAwaits); err != nil {
			return fmt.Errorf("creating chore confirmation: %w", err)
		}
	}

	return nil
}

func (s *Store) GetConfirmation(ctx context.Context, id uuid.UUID) (*completion.ChoreConfirmation, error) {
	query := `
		SELECT id, chore_completion_id, user_id, status, created_at
		FROM chore_confirmations
		WHERE id = $1
	`

	var conf completion.ChoreConfirmation

	var status string

	err := s.db.Conn(ctx).QueryRowContext(ctx, query, id).Scan(
		&conf.ID, &conf.ChoreCompletionID, &conf.UserID, &status, &conf.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, completion.ErrConfirmationNotFound
		}

		return nil, fmt.Errorf("getting chore confirmation: %w", err)
	}

	conf.Status = completion.Status(status)

	return &conf, nil
}

func (s *Store) UpdateConfirmationStatus(ctx context.Context, id uuid.UUID, status completion.Status) error {
	query := `
		UPDATE chore_confirmations
		SET status = $1
		WHERE id = $2
	`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating confirmation status: %w", err)
	}

	return nil
}

func (s *Store) CountConfirmations(ctx context.Context, completionID uuid.UUID, status completion.Status) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM chore_confirmations
		WHERE chore_completion_id = $1 AND status = $2
	`

	var count int
	if err := s.db.Conn(ctx).QueryRowContext(ctx, query, completionID, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting confirmations: %w", err)
	}

	return count, nil
}

func (s *Store) ListFamilyCompletions(ctx context.Context, filter completion.ListFilter) ([]*completion.CompletionView, error) {
	query := `
		SELECT cc.id, cc.status, cc.message,
			COALESCE(c.name, ''), COALESCE(u.username, ''), cc.created_at
		FROM chore_completions cc
		LEFT JOIN chores c ON c.id = cc.chore_id
		LEFT JOIN users u ON u.id = cc.completed_by_id
		WHERE cc.family_id = $1`

	args := []any{filter.FamilyID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND cc.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ChoreID != nil {
		query += fmt.Sprintf(" AND cc.chore_id = $%d", argIdx)

		args = append(args, *filter.ChoreID)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY cc.created_at DESC OFFSET $%d LIMIT $%d", argIdx, argIdx+1)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing family completions: %w", err)
	}
	defer rows.Close()

	var views []*completion.CompletionView

	for rows.Next() {
		var v completion.CompletionView

		var status string

		if err := rows.Scan(&v.ID, &status, &v.Message, &v.ChoreName, &v.CompletedBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning completion view: %w", err)
		}

		v.Status = completion.Status(status)
		views = append(views, &v)
	}

	return views, rows.Err()
}

func (s *Store) ListCompletionConfirmations(ctx context.Context, completionID uuid.UUID) ([]*completion.ChoreConfirmation, error) {
	query := `
		SELECT id, chore_completion_id, user_id, status, created_at
		FROM chore_confirmations
		WHERE chore_completion_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, completionID)
	if err != nil {
		return nil, fmt.Errorf("listing completion confirmations: %w", err)
	}
	defer rows.Close()

	var confs []*completion.ChoreConfirmation

	for rows.Next() {
		var conf completion.ChoreConfirmation

		var status string

		if err := rows.Scan(&conf.ID, &conf.ChoreCompletionID, &conf.UserID, &status, &conf.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning confirmation: %w", err)
		}

		conf.Status = completion.Status(status)
		confs = append(confs, &conf)
	}

	return confs, rows.Err()
}

func (s *Store) ListUserConfirmations(ctx context.Context, userID uuid.UUID, status *completion.Status) ([]*completion.PendingConfirmation, error) {
	query := `
		SELECT conf.id, conf.status, conf.created_at,
			cc.id, cc.status, cc.message,
			COALESCE(c.name, ''), COALESCE(c.valuation, 0), COALESCE(u.username, '')
		FROM chore_confirmations conf
		JOIN chore_completions cc ON cc.id = conf.chore_completion_id
		LEFT JOIN chores c ON c.id = cc.chore_id
		LEFT JOIN users u ON u.id = cc.completed_by_id
		WHERE conf.user_id = $1`

	args := []any{userID}

	if status != nil {
		query += " AND conf.status = $2"

		args = append(args, *status)
	}

	query += " ORDER BY conf.created_at DESC"

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing user confirmations: %w", err)
	}
	defer rows.Close()

	var pending []*completion.PendingConfirmation

	for rows.Next() {
		var p completion.PendingConfirmation

		var confStatus, compStatus, valuation string

		if err := rows.Scan(
			&p.ID, &confStatus, &p.CreatedAt,
			&p.CompletionID, &compStatus, &p.Message,
			&p.ChoreName, &valuation, &p.CompletedBy,
		); err != nil {
			return nil, fmt.Errorf("scanning pending confirmation: %w", err)
		}

		v, err := decimal.NewFromString(valuation)
		if err != nil {
			return nil, fmt.Errorf("parsing valuation: %w", err)
		}

		p.Status = completion.Status(confStatus)
		p.CompletionStatus = completion.Status(compStatus)
		p.ChoreValuation = v
		pending = append(pending, &p)
	}

	return pending, rows.Err()
}
