package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

func (s *Store) CreateWallet(ctx context.Context, w *wallet.Wallet) error {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query, w.UserID, w.Balance.StringFixed(2)).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("creating wallet: %w", err)
	}

	return nil
}

func (s *Store) DeleteWalletByUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM wallets WHERE user_id = $1`

	if _, err := s.db.Conn(ctx).ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("deleting wallet: %w", err)
	}

	return nil
}

func (s *Store) WalletExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM wallets WHERE user_id = $1)`

	var exists bool
	if err := s.db.Conn(ctx).QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking wallet existence: %w", err)
	}

	return exists, nil
}

func (s *Store) GetWalletByUser(ctx context.Context, userID uuid.UUID) (*wallet.Wallet, error) {
	query := `SELECT id, user_id, balance FROM wallets WHERE user_id = $1`

	var w wallet.Wallet

	var balance string

	err := s.db.Conn(ctx).QueryRowContext(ctx, query, userID).Scan(&w.ID, &w.UserID, &balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrNotFound
		}

		return nil, fmt.Errorf("getting wallet: %w", err)
	}

	b, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parsing balance: %w", err)
	}

	w.Balance = b

	return &w, nil
}

func (s *Store) GetBalanceForUpdate(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT balance FROM wallets WHERE user_id = $1 FOR UPDATE`

	var balance string
	if err := s.db.Conn(ctx).QueryRowContext(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, wallet.ErrNotFound
		}

		return decimal.Zero, fmt.Errorf("locking wallet balance: %w", err)
	}

	b, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing balance: %w", err)
	}

	return b, nil
}

func (s *Store) AddBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE wallets
		SET balance = balance + $1
		WHERE user_id = $2
	`

	res, err := s.db.Conn(ctx).ExecContext(ctx, query, delta.StringFixed(2), userID)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wallet.ErrNotFound
	}

	return nil
}

func (s *Store) CreatePeerTransaction(ctx context.Context, tx *wallet.PeerTransaction) error {
	query := `
		INSERT INTO peer_transactions (detail, coins, transaction_type, from_user_id, to_user_id, product_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query,
		tx.Detail,
		tx.Coins.StringFixed(2),
		tx.Type,
		tx.FromUserID,
		tx.ToUserID,
		tx.ProductID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating peer transaction: %w", err)
	}

	return nil
}

func (s *Store) CreateRewardTransaction(ctx context.Context, tx *wallet.RewardTransaction) error {
	query := `
		INSERT INTO reward_transactions (detail, coins, transaction_type, to_user_id, chore_completion_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.Conn(ctx).QueryRowContext(ctx, query,
		tx.Detail,
		tx.Coins.StringFixed(2),
		tx.Type,
		tx.ToUserID,
		tx.ChoreCompletionID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating reward transaction: %w", err)
	}

	return nil
}

// ListUserTransactions returns the union of peer and reward transactions
// the user took part in, newest first.
func (s *Store) ListUserTransactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*wallet.Entry, error) {
	query := `
		SELECT id, detail, coins, transaction_type,
			CASE WHEN to_user_id = $1 THEN 'incoming' ELSE 'outgoing' END AS direction,
			created_at
		FROM peer_transactions
		WHERE to_user_id = $1 OR from_user_id = $1
		UNION ALL
		SELECT id, detail, coins, transaction_type, 'incoming' AS direction, created_at
		FROM reward_transactions
		WHERE to_user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.Conn(ctx).QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var entries []*wallet.Entry

	for rows.Next() {
		var e wallet.Entry

		var coins string

		if err := rows.Scan(&e.ID, &e.Detail, &coins, &e.Type, &e.Direction, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		c, err := decimal.NewFromString(coins)
		if err != nil {
			return nil, fmt.Errorf("parsing coins: %w", err)
		}

		e.Coins = c
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
