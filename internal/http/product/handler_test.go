package product_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/auth"
	producthttp "github.com/PANATARA/chorebank/internal/http/product"
	"github.com/PANATARA/chorebank/internal/product"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type txRunnerStub struct{}

func (txRunnerStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestHandler_Buy_InsufficientFunds(t *testing.T) {
	familyID := uuid.New()
	sellerID := uuid.New()
	buyer := &user.User{ID: uuid.New(), FamilyID: &familyID}

	listing := &product.Product{
		ID:       uuid.New(),
		Name:     "Skip one chore",
		Price:    decimal.NewFromInt(100),
		IsActive: true,
		FamilyID: familyID,
		SellerID: &sellerID,
	}

	ctrl := gomock.NewController(t)

	repo := product.NewMockRepository(ctrl)
	settler := product.NewMockSettler(ctrl)

	repo.EXPECT().GetProductForUpdate(gomock.Any(), listing.ID).Return(listing, nil)
	settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil, wallet.ErrNotEnoughCoins)

	h := producthttp.NewHandler(product.NewService(repo, settler, txRunnerStub{}))

	r := chi.NewRouter()
	h.Routes(r)

	req := httptest.NewRequest(http.MethodPost, "/"+listing.ID.String()+"/buy", nil)
	req = req.WithContext(auth.WithUser(req.Context(), buyer))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
