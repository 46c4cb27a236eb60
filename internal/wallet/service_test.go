package wallet_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/completion"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type txRunnerStub struct{}

func (txRunnerStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

// decEq matches a decimal by numeric value. Plain gomock equality compares
// the internal representation, which differs between 7 and 7.0.
type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && m.want.Equal(d)
}

func (m decimalMatcher) String() string { return "decimal " + m.want.String() }

func decEq(s string) gomock.Matcher { return decimalMatcher{want: dec(s)} }

func newService(t *testing.T) (*wallet.Service, *wallet.MockRepository, *wallet.MockChoreValuations) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := wallet.NewMockRepository(ctrl)
	chores := wallet.NewMockChoreValuations(ctrl)

	return wallet.NewService(repo, chores, txRunnerStub{}, dec("0.7"), dec("0.8")), repo, chores
}

func TestService_Settle(t *testing.T) {
	fromID := uuid.New()
	toID := uuid.New()

	type testCase struct {
		name       string
		amount     decimal.Decimal
		kind       wallet.Kind
		setupMock  func(repo *wallet.MockRepository)
		wantCoins  decimal.Decimal
		wantErr    error
	}

	tests := []testCase{
		{
			name:   "TransferPaysOutAt70Percent",
			amount: dec("10"),
			kind:   wallet.KindTransfer,
			setupMock: func(repo *wallet.MockRepository) {
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), fromID).Return(dec("50"), nil)
				repo.EXPECT().AddBalance(gomock.Any(), fromID, decEq("-10")).Return(nil)
				repo.EXPECT().AddBalance(gomock.Any(), toID, decEq("7")).Return(nil)
				repo.EXPECT().CreatePeerTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCoins: dec("10"),
		},
		{
			name:   "PurchasePaysOutAt80Percent",
			amount: dec("12.5"),
			kind:   wallet.KindPurchase,
			setupMock: func(repo *wallet.MockRepository) {
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), fromID).Return(dec("12.5"), nil)
				repo.EXPECT().AddBalance(gomock.Any(), fromID, decEq("-12.5")).Return(nil)
				repo.EXPECT().AddBalance(gomock.Any(), toID, decEq("10")).Return(nil)
				repo.EXPECT().CreatePeerTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCoins: dec("12.5"),
		},
		{
			name:   "PayoutQuantizedToTwoPlaces",
			amount: dec("0.05"),
			kind:   wallet.KindTransfer,
			setupMock: func(repo *wallet.MockRepository) {
				// 0.05 * 0.7 = 0.035, rounds half-up to 0.04.
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), fromID).Return(dec("1"), nil)
				repo.EXPECT().AddBalance(gomock.Any(), fromID, decEq("-0.05")).Return(nil)
				repo.EXPECT().AddBalance(gomock.Any(), toID, decEq("0.04")).Return(nil)
				repo.EXPECT().CreatePeerTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCoins: dec("0.05"),
		},
		{
			name:   "InsufficientFunds",
			amount: dec("10"),
			kind:   wallet.KindTransfer,
			setupMock: func(repo *wallet.MockRepository) {
				repo.EXPECT().GetBalanceForUpdate(gomock.Any(), fromID).Return(dec("9.99"), nil)
			},
			wantErr: wallet.ErrNotEnoughCoins,
		},
		{
			name:    "ZeroAmount",
			amount:  decimal.Zero,
			kind:    wallet.KindTransfer,
			wantErr: wallet.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			amount:  dec("-3"),
			kind:    wallet.KindTransfer,
			wantErr: wallet.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Settle(context.Background(), wallet.SettleParams{
				FromUser: fromID,
				ToUser:   toID,
				Amount:   tt.amount,
				Kind:     tt.kind,
				Detail:   "test",
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			// The log row keeps the pre-rate amount.
			assert.True(t, tt.wantCoins.Equal(got.Coins), "want %s got %s", tt.wantCoins, got.Coins)
			assert.Equal(t, tt.kind, got.Type)
		})
	}
}

func TestService_Transfer_FamilyScope(t *testing.T) {
	familyA := uuid.New()
	familyB := uuid.New()

	from := &user.User{ID: uuid.New(), FamilyID: &familyA}

	type testCase struct {
		name    string
		to      *user.User
		wantErr error
	}

	tests := []testCase{
		{
			name:    "DifferentFamily",
			to:      &user.User{ID: uuid.New(), FamilyID: &familyB},
			wantErr: wallet.ErrNotSameFamily,
		},
		{
			name:    "RecipientNotInAnyFamily",
			to:      &user.User{ID: uuid.New()},
			wantErr: wallet.ErrNotSameFamily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(t)

			_, err := svc.Transfer(context.Background(), from, tt.to, dec("5"))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RewardForCompletion(t *testing.T) {
	choreID := uuid.New()
	completerID := uuid.New()

	approved := &completion.ChoreCompletion{
		ID:          uuid.New(),
		ChoreID:     &choreID,
		CompletedBy: &completerID,
		Status:      completion.StatusApproved,
	}

	t.Run("FullValuationNoRate", func(t *testing.T) {
		svc, repo, chores := newService(t)

		chores.EXPECT().GetValuation(gomock.Any(), choreID).Return(dec("10"), nil)
		repo.EXPECT().AddBalance(gomock.Any(), completerID, decEq("10")).Return(nil)
		repo.EXPECT().
			CreateRewardTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *wallet.RewardTransaction) error {
				assert.True(t, dec("10").Equal(tx.Coins))
				assert.Equal(t, wallet.RewardForChore, tx.Type)
				require.NotNil(t, tx.ChoreCompletionID)
				assert.Equal(t, approved.ID, *tx.ChoreCompletionID)
				return nil
			})

		require.NoError(t, svc.RewardForCompletion(context.Background(), approved, "income"))
	})

	t.Run("NotApproved", func(t *testing.T) {
		svc, _, _ := newService(t)

		awaiting := &completion.ChoreCompletion{
			ID:          uuid.New(),
			ChoreID:     &choreID,
			CompletedBy: &completerID,
			Status:      completion.StatusAwaits,
		}

		err := svc.RewardForCompletion(context.Background(), awaiting, "income")
		require.ErrorIs(t, err, wallet.ErrCompletionNotApproved)
	})

	t.Run("MissingCompleter", func(t *testing.T) {
		svc, _, _ := newService(t)

		orphan := &completion.ChoreCompletion{
			ID:      uuid.New(),
			ChoreID: &choreID,
			Status:  completion.StatusApproved,
		}

		require.Error(t, svc.RewardForCompletion(context.Background(), orphan, "income"))
	})
}

func TestService_CreateWallet_ReplacesExisting(t *testing.T) {
	userID := uuid.New()

	svc, repo, _ := newService(t)

	repo.EXPECT().WalletExists(gomock.Any(), userID).Return(true, nil)
	repo.EXPECT().DeleteWalletByUser(gomock.Any(), userID).Return(nil)
	repo.EXPECT().
		CreateWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *wallet.Wallet) error {
			assert.True(t, w.Balance.IsZero())
			w.ID = uuid.New()
			return nil
		})

	w, err := svc.CreateWallet(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, w.UserID)
}
