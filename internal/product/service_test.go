package product_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/product"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type txRunnerStub struct{}

func (txRunnerStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(t *testing.T) (*product.Service, *product.MockRepository, *product.MockSettler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)
	settler := product.NewMockSettler(ctrl)

	return product.NewService(repo, settler, txRunnerStub{}), repo, settler
}

func TestService_Buy(t *testing.T) {
	familyID := uuid.New()
	sellerID := uuid.New()
	productID := uuid.New()

	buyer := &user.User{ID: uuid.New(), FamilyID: &familyID}

	listing := func() *product.Product {
		return &product.Product{
			ID:       productID,
			Name:     "Skip one chore",
			Price:    decimal.NewFromInt(15),
			IsActive: true,
			FamilyID: familyID,
			SellerID: &sellerID,
		}
	}

	type testCase struct {
		name      string
		buyer     *user.User
		setupMock func(repo *product.MockRepository, settler *product.MockSettler)
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "SettlesAndDeactivates",
			buyer: buyer,
			setupMock: func(repo *product.MockRepository, settler *product.MockSettler) {
				repo.EXPECT().GetProductForUpdate(gomock.Any(), productID).Return(listing(), nil)
				settler.EXPECT().
					Settle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p wallet.SettleParams) (*wallet.PeerTransaction, error) {
						assert.Equal(t, buyer.ID, p.FromUser)
						assert.Equal(t, sellerID, p.ToUser)
						assert.Equal(t, wallet.KindPurchase, p.Kind)
						assert.True(t, decimal.NewFromInt(15).Equal(p.Amount))
						require.NotNil(t, p.ProductID)
						assert.Equal(t, productID, *p.ProductID)

						return &wallet.PeerTransaction{ID: uuid.New(), Coins: p.Amount}, nil
					})
				repo.EXPECT().DeactivateProduct(gomock.Any(), productID).Return(nil)
			},
		},
		{
			name:  "SelfPurchase",
			buyer: &user.User{ID: sellerID, FamilyID: &familyID},
			setupMock: func(repo *product.MockRepository, settler *product.MockSettler) {
				repo.EXPECT().GetProductForUpdate(gomock.Any(), productID).Return(listing(), nil)
			},
			wantErr: product.ErrSelfPurchase,
		},
		{
			name:  "AlreadySold",
			buyer: buyer,
			setupMock: func(repo *product.MockRepository, settler *product.MockSettler) {
				sold := listing()
				sold.IsActive = false

				repo.EXPECT().GetProductForUpdate(gomock.Any(), productID).Return(sold, nil)
			},
			wantErr: product.ErrNotFound,
		},
		{
			name:  "OtherFamilysListing",
			buyer: func() *user.User { other := uuid.New(); return &user.User{ID: uuid.New(), FamilyID: &other} }(),
			setupMock: func(repo *product.MockRepository, settler *product.MockSettler) {
				repo.EXPECT().GetProductForUpdate(gomock.Any(), productID).Return(listing(), nil)
			},
			wantErr: product.ErrNotFound,
		},
		{
			name:  "BuyerCannotAfford",
			buyer: buyer,
			setupMock: func(repo *product.MockRepository, settler *product.MockSettler) {
				repo.EXPECT().GetProductForUpdate(gomock.Any(), productID).Return(listing(), nil)
				settler.EXPECT().
					Settle(gomock.Any(), gomock.Any()).
					Return(nil, wallet.ErrNotEnoughCoins)
			},
			wantErr: wallet.ErrNotEnoughCoins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, settler := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, settler)
			}

			tx, err := svc.Buy(context.Background(), tt.buyer, productID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, tx)
		})
	}
}

func TestService_Create(t *testing.T) {
	familyID := uuid.New()
	seller := &user.User{ID: uuid.New(), FamilyID: &familyID}

	svc, repo, _ := newService(t)

	repo.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *product.Product) error {
			p.ID = uuid.New()
			return nil
		})

	p, err := svc.Create(context.Background(), seller, familyID, product.CreateParams{
		Name:  "Movie night pick",
		Price: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	require.NotNil(t, p.SellerID)
	assert.Equal(t, seller.ID, *p.SellerID)
}

func TestService_ListMine(t *testing.T) {
	sellerID := uuid.New()

	svc, repo, _ := newService(t)

	own := []*product.Product{
		{ID: uuid.New(), Name: "Breakfast in bed", SellerID: &sellerID, IsActive: true},
	}

	repo.EXPECT().ListSellerProducts(gomock.Any(), sellerID).Return(own, nil)

	got, err := svc.ListMine(context.Background(), sellerID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Breakfast in bed", got[0].Name)
}
