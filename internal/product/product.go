package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound also covers inactive listings: a sold product is gone
	// from the buyer's point of view.
	ErrNotFound = errors.New("product not found")

	ErrSelfPurchase = errors.New("cannot buy your own product")
)

// Product is a one-shot marketplace listing. There is no quantity: a
// purchase deactivates it.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
	Price       decimal.Decimal
	IsActive    bool
	FamilyID    uuid.UUID
	SellerID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
