package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("wallet not found")
	ErrNotEnoughCoins = errors.New("not enough coins for the transaction")
	ErrInvalidAmount  = errors.New("transaction amount must be positive")
	ErrNotSameFamily  = errors.New("recipient is not in your family")

	// ErrCompletionNotApproved guards reward settlement: only an approved
	// completion may be paid out.
	ErrCompletionNotApproved = errors.New("chore completion is not approved")
)

// Kind distinguishes the two peer transaction flavors. The payout rate
// depends on it; the logged amount does not.
type Kind string

const (
	KindTransfer Kind = "transfer"
	KindPurchase Kind = "purchase"
)

// RewardForChore is the only reward transaction type.
const RewardForChore = "reward_for_chore"

// Wallet holds one user's coin balance. Mutated only through relative
// balance updates inside the settlement engine.
type Wallet struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Balance decimal.Decimal
}

// PeerTransaction is an immutable log row for a transfer or purchase.
// Coins is the pre-rate amount debited from the sender.
type PeerTransaction struct {
	ID         uuid.UUID
	Detail     string
	Coins      decimal.Decimal
	Type       Kind
	FromUserID *uuid.UUID
	ToUserID   *uuid.UUID
	ProductID  *uuid.UUID
	CreatedAt  time.Time
}

// RewardTransaction is an immutable log row for a system-to-user credit.
type RewardTransaction struct {
	ID                uuid.UUID
	Detail            string
	Coins             decimal.Decimal
	Type              string
	ToUserID          *uuid.UUID
	ChoreCompletionID *uuid.UUID
	CreatedAt         time.Time
}

// Entry is one row of a user's combined transaction history, the union of
// peer and reward transactions seen from that user's side.
type Entry struct {
	ID        uuid.UUID
	Detail    string
	Coins     decimal.Decimal
	Type      string
	Direction string // "incoming" or "outgoing"
	CreatedAt time.Time
}
