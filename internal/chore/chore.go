package chore

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound covers both missing and deactivated chores; a soft-deleted
// chore is indistinguishable from an absent one to callers.
var ErrNotFound = errors.New("chore not found")

// Chore is a task template owned by a family. Valuation is the coin
// amount credited for an approved completion.
type Chore struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
	Valuation   decimal.Decimal
	FamilyID    uuid.UUID
	IsActive    bool
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultChores is the seed set every new family starts with.
func DefaultChores() []CreateParams {
	return []CreateParams{
		{Name: "Wash the dishes", Description: "Wash and put away the dishes", Icon: "dishes", Valuation: decimal.NewFromInt(5)},
		{Name: "Take out the trash", Description: "Take the trash to the bins", Icon: "trash", Valuation: decimal.NewFromInt(3)},
		{Name: "Vacuum the floor", Description: "Vacuum all the rooms", Icon: "vacuum", Valuation: decimal.NewFromInt(10)},
		{Name: "Walk the dog", Description: "At least twenty minutes outside", Icon: "dog", Valuation: decimal.NewFromInt(7)},
	}
}
