package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/database"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	// GetProductForUpdate locks the listing so two buyers cannot both
	// settle against it.
	GetProductForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	ListActiveProducts(ctx context.Context, familyID, excludeSeller uuid.UUID) ([]*Product, error)
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*Product, error)
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
}

// Settler runs the purchase-kind peer transaction. Implemented by the
// wallet service.
type Settler interface {
	Settle(ctx context.Context, p wallet.SettleParams) (*wallet.PeerTransaction, error)
}

type Service struct {
	repo    Repository
	settler Settler
	txs     database.TxRunner
}

func NewService(repo Repository, settler Settler, txs database.TxRunner) *Service {
	return &Service{repo: repo, settler: settler, txs: txs}
}

type CreateParams struct {
	Name        string
	Description string
	Icon        string
	Price       decimal.Decimal
}

func (s *Service) Create(ctx context.Context, seller *user.User, familyID uuid.UUID, params CreateParams) (*Product, error) {
	p := &Product{
		Name:        params.Name,
		Description: params.Description,
		Icon:        params.Icon,
		Price:       params.Price,
		IsActive:    true,
		FamilyID:    familyID,
		SellerID:    &seller.ID,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Buy settles a purchase-kind peer transaction from the buyer to the
// seller at the listing price, then deactivates the listing. The payment
// and the deactivation commit together.
func (s *Service) Buy(ctx context.Context, buyer *user.User, productID uuid.UUID) (*wallet.PeerTransaction, error) {
	var tx *wallet.PeerTransaction

	err := s.txs.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetProductForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		if buyer.FamilyID == nil || p.FamilyID != *buyer.FamilyID {
			return ErrNotFound
		}

		if !p.IsActive || p.SellerID == nil {
			return ErrNotFound
		}

		if *p.SellerID == buyer.ID {
			return ErrSelfPurchase
		}

		tx, err = s.settler.Settle(ctx, wallet.SettleParams{
			FromUser:  buyer.ID,
			ToUser:    *p.SellerID,
			Amount:    p.Price,
			Kind:      wallet.KindPurchase,
			Detail:    fmt.Sprintf("Purchase: %s", p.Name),
			ProductID: &p.ID,
		})
		if err != nil {
			return err
		}

		return s.repo.DeactivateProduct(ctx, p.ID)
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// ListForBuyer returns the family's active listings, excluding the
// caller's own.
func (s *Service) ListForBuyer(ctx context.Context, familyID, buyerID uuid.UUID) ([]*Product, error) {
	return s.repo.ListActiveProducts(ctx, familyID, buyerID)
}

// ListMine returns the seller's own active listings.
func (s *Service) ListMine(ctx context.Context, sellerID uuid.UUID) ([]*Product, error) {
	return s.repo.ListSellerProducts(ctx, sellerID)
}
