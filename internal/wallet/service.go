package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/completion"
	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/user"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=wallet
type Repository interface {
	CreateWallet(ctx context.Context, w *Wallet) error
	DeleteWalletByUser(ctx context.Context, userID uuid.UUID) error
	WalletExists(ctx context.Context, userID uuid.UUID) (bool, error)
	GetWalletByUser(ctx context.Context, userID uuid.UUID) (*Wallet, error)

	// GetBalanceForUpdate locks the wallet row for the rest of the ambient
	// transaction.
	GetBalanceForUpdate(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// AddBalance applies a relative balance update, never an overwrite.
	AddBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) error

	CreatePeerTransaction(ctx context.Context, tx *PeerTransaction) error
	CreateRewardTransaction(ctx context.Context, tx *RewardTransaction) error
	ListUserTransactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*Entry, error)
}

// ChoreValuations resolves the coin value of a chore at settlement time.
type ChoreValuations interface {
	GetValuation(ctx context.Context, choreID uuid.UUID) (decimal.Decimal, error)
}

// Service is the settlement engine: every wallet mutation in the system
// goes through it, paired with an immutable log row in the same
// transaction.
type Service struct {
	repo         Repository
	chores       ChoreValuations
	txs          database.TxRunner
	transferRate decimal.Decimal
	purchaseRate decimal.Decimal
}

func NewService(repo Repository, chores ChoreValuations, txs database.TxRunner, transferRate, purchaseRate decimal.Decimal) *Service {
	return &Service{
		repo:         repo,
		chores:       chores,
		txs:          txs,
		transferRate: transferRate,
		purchaseRate: purchaseRate,
	}
}

type SettleParams struct {
	FromUser  uuid.UUID
	ToUser    uuid.UUID
	Amount    decimal.Decimal
	Kind      Kind
	Detail    string
	ProductID *uuid.UUID
}

// Settle debits the full amount from the sender, credits the receiver at
// the kind's payout rate quantized to 2 fractional digits, and records the
// log row with the pre-rate amount. All three mutations commit together or
// not at all.
func (s *Service) Settle(ctx context.Context, p SettleParams) (*PeerTransaction, error) {
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var rate decimal.Decimal

	switch p.Kind {
	case KindTransfer:
		rate = s.transferRate
	case KindPurchase:
		rate = s.purchaseRate
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", p.Kind)
	}

	tx := &PeerTransaction{
		Detail:     p.Detail,
		Coins:      p.Amount,
		Type:       p.Kind,
		FromUserID: &p.FromUser,
		ToUserID:   &p.ToUser,
		ProductID:  p.ProductID,
	}

	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		balance, err := s.repo.GetBalanceForUpdate(ctx, p.FromUser)
		if err != nil {
			return err
		}

		if balance.LessThan(p.Amount) {
			return ErrNotEnoughCoins
		}

		if err := s.repo.AddBalance(ctx, p.FromUser, p.Amount.Neg()); err != nil {
			return err
		}

		payout := p.Amount.Mul(rate).Round(2)
		if err := s.repo.AddBalance(ctx, p.ToUser, payout); err != nil {
			return err
		}

		return s.repo.CreatePeerTransaction(ctx, tx)
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// Transfer sends coins between two members of the same family.
func (s *Service) Transfer(ctx context.Context, from, to *user.User, amount decimal.Decimal) (*PeerTransaction, error) {
	if to.FamilyID == nil || !from.InFamily(*to.FamilyID) {
		return nil, ErrNotSameFamily
	}

	return s.Settle(ctx, SettleParams{
		FromUser: from.ID,
		ToUser:   to.ID,
		Amount:   amount,
		Kind:     KindTransfer,
		Detail:   "Transferred you some coins",
	})
}

// RewardForCompletion credits the completer with the chore's full
// valuation, no rate applied, and logs the payout against the completion.
func (s *Service) RewardForCompletion(ctx context.Context, c *completion.ChoreCompletion, detail string) error {
	if c.Status != completion.StatusApproved {
		return ErrCompletionNotApproved
	}

	if c.CompletedBy == nil || c.ChoreID == nil {
		return fmt.Errorf("chore completion %s has no completer or chore", c.ID)
	}

	return s.txs.WithinTx(ctx, func(ctx context.Context) error {
		amount, err := s.chores.GetValuation(ctx, *c.ChoreID)
		if err != nil {
			return err
		}

		if err := s.repo.AddBalance(ctx, *c.CompletedBy, amount); err != nil {
			return err
		}

		return s.repo.CreateRewardTransaction(ctx, &RewardTransaction{
			Detail:            detail,
			Coins:             amount,
			Type:              RewardForChore,
			ToUserID:          c.CompletedBy,
			ChoreCompletionID: &c.ID,
		})
	})
}

// CreateWallet gives the user a fresh zero-balance wallet, replacing any
// wallet left over from a previous family membership.
func (s *Service) CreateWallet(ctx context.Context, userID uuid.UUID) (*Wallet, error) {
	w := &Wallet{UserID: userID, Balance: decimal.Zero}

	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.repo.WalletExists(ctx, userID)
		if err != nil {
			return err
		}

		if exists {
			if err := s.repo.DeleteWalletByUser(ctx, userID); err != nil {
				return err
			}
		}

		return s.repo.CreateWallet(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Service) DeleteWallet(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DeleteWalletByUser(ctx, userID)
}

func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	w, err := s.repo.GetWalletByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return w.Balance, nil
}

func (s *Service) Transactions(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*Entry, error) {
	return s.repo.ListUserTransactions(ctx, userID, offset, limit)
}
