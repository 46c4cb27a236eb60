package wallet_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PANATARA/chorebank/internal/auth"
	wallethttp "github.com/PANATARA/chorebank/internal/http/wallet"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type txRunnerStub struct{}

func (txRunnerStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestHandler_Transfer_InsufficientFunds(t *testing.T) {
	familyID := uuid.New()
	from := &user.User{ID: uuid.New(), FamilyID: &familyID}
	to := &user.User{ID: uuid.New(), FamilyID: &familyID}

	ctrl := gomock.NewController(t)

	walletRepo := wallet.NewMockRepository(ctrl)
	userRepo := user.NewMockRepository(ctrl)

	userRepo.EXPECT().GetUser(gomock.Any(), to.ID).Return(to, nil)
	walletRepo.EXPECT().
		GetBalanceForUpdate(gomock.Any(), from.ID).
		Return(decimal.NewFromInt(1), nil)

	svc := wallet.NewService(
		walletRepo,
		wallet.NewMockChoreValuations(ctrl),
		txRunnerStub{},
		decimal.RequireFromString("0.7"),
		decimal.RequireFromString("0.8"),
	)
	h := wallethttp.NewHandler(svc, user.NewService(userRepo))

	r := chi.NewRouter()
	h.Routes(r)

	body, err := json.Marshal(map[string]any{"to_user_id": to.ID, "amount": "10"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/transfer", bytes.NewReader(body))
	req = req.WithContext(auth.WithUser(req.Context(), from))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
