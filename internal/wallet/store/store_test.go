package store_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/wallet"
	"github.com/PANATARA/chorebank/internal/wallet/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(database.Static(db)), mock
}

func TestStore_GetBalanceForUpdate(t *testing.T) {
	userID := uuid.New()

	t.Run("ParsesNumericBalance", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT balance FROM wallets WHERE user_id = $1 FOR UPDATE`)).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("12.50"))

		got, err := s.GetBalanceForUpdate(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.50").Equal(got))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoWallet", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT balance FROM wallets WHERE user_id = $1 FOR UPDATE`)).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetBalanceForUpdate(context.Background(), userID)
		require.ErrorIs(t, err, wallet.ErrNotFound)
	})
}

func TestStore_AddBalance(t *testing.T) {
	userID := uuid.New()

	t.Run("SendsQuantizedDelta", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
			WithArgs("-7.00", userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.AddBalance(context.Background(), userID, decimal.NewFromInt(-7))
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoRowTouched", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
			WithArgs("1.00", userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.AddBalance(context.Background(), userID, decimal.NewFromInt(1))
		require.ErrorIs(t, err, wallet.ErrNotFound)
	})
}

func TestStore_GetWalletByUser_NotFound(t *testing.T) {
	userID := uuid.New()

	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, balance FROM wallets WHERE user_id = $1`)).
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetWalletByUser(context.Background(), userID)
	require.ErrorIs(t, err, wallet.ErrNotFound)
}

func TestStore_CreateWallet(t *testing.T) {
	userID := uuid.New()
	walletID := uuid.New()

	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (user_id, balance)`)).
		WithArgs(userID, "0.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(walletID.String()))

	w := &wallet.Wallet{UserID: userID, Balance: decimal.Zero}
	require.NoError(t, s.CreateWallet(context.Background(), w))
	assert.Equal(t, walletID, w.ID)
}
