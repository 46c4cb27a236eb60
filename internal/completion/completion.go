package completion

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound             = errors.New("chore completion not found")
	ErrConfirmationNotFound = errors.New("chore confirmation not found")

	// ErrCannotBeChanged is returned for any transition attempt on a
	// completion that already reached a terminal status, and for votes on
	// confirmations whose parent completion is terminal.
	ErrCannotBeChanged = errors.New("chore completion cannot be changed")

	// ErrInvalidStatus rejects setting a confirmation back to awaits.
	ErrInvalidStatus = errors.New("confirmation status must be approved or canceled")
)

// Status is shared by completions and confirmations.
type Status string

const (
	StatusAwaits   Status = "awaits"
	StatusApproved Status = "approved"
	StatusCanceled Status = "canceled"
)

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusCanceled
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusAwaits || s == StatusApproved || s == StatusCanceled
}

// ChoreCompletion is one claim that a chore was done. The family reference
// is denormalized from the chore at creation time so the claim survives
// chore deletion.
type ChoreCompletion struct {
	ID          uuid.UUID
	ChoreID     *uuid.UUID
	FamilyID    uuid.UUID
	CompletedBy *uuid.UUID
	Status      Status
	Message     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChoreConfirmation is a single reviewer's vote on a pending completion.
type ChoreConfirmation struct {
	ID                uuid.UUID
	ChoreCompletionID uuid.UUID
	UserID            uuid.UUID
	Status            Status
	CreatedAt         time.Time
}

// CompletionView is the family feed projection: a completion joined with
// chore and completer metadata for display.
type CompletionView struct {
	ID          uuid.UUID
	Status      Status
	Message     string
	ChoreName   string
	CompletedBy string
	CreatedAt   time.Time
}

// PendingConfirmation is the review-queue projection for one reviewer.
type PendingConfirmation struct {
	ID               uuid.UUID
	Status           Status
	CompletionID     uuid.UUID
	CompletionStatus Status
	Message          string
	ChoreName        string
	ChoreValuation   decimal.Decimal
	CompletedBy      string
	CreatedAt        time.Time
}
