package wallet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/user"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type Handler struct {
	svc   *wallet.Service
	users *user.Service
}

func NewHandler(svc *wallet.Service, users *user.Service) *Handler {
	return &Handler{svc: svc, users: users}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.balance)
	r.Get("/transactions", h.transactions)
	r.Post("/transfer", h.transfer)
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	balance, err := h.svc.Balance(r.Context(), u.ID)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			http.Error(w, "wallet not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(balanceResponse{Balance: balance}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type entryResponse struct {
	ID        uuid.UUID       `json:"id"`
	Detail    string          `json:"detail"`
	Coins     decimal.Decimal `json:"coins"`
	Type      string          `json:"type"`
	Direction string          `json:"direction"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())
	offset, limit := pagination(r)

	entries, err := h.svc.Transactions(r.Context(), u.ID, offset, limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			ID:        e.ID,
			Detail:    e.Detail,
			Coins:     e.Coins,
			Type:      e.Type,
			Direction: e.Direction,
			CreatedAt: e.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type transferRequest struct {
	ToUserID uuid.UUID       `json:"to_user_id"`
	Amount   decimal.Decimal `json:"amount"`
}

type transferResponse struct {
	ID        uuid.UUID       `json:"id"`
	Detail    string          `json:"detail"`
	Coins     decimal.Decimal `json:"coins"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	from := auth.UserFrom(r.Context())

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	to, err := h.users.Get(r.Context(), req.ToUserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			http.Error(w, "recipient not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	tx, err := h.svc.Transfer(r.Context(), from, to, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			http.Error(w, "amount must be positive", http.StatusBadRequest)
		case errors.Is(err, wallet.ErrNotSameFamily):
			http.Error(w, "recipient is not in your family", http.StatusConflict)
		case errors.Is(err, wallet.ErrNotEnoughCoins):
			http.Error(w, "not enough coins", http.StatusBadRequest)
		case errors.Is(err, wallet.ErrNotFound):
			http.Error(w, "wallet not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := transferResponse{ID: tx.ID, Detail: tx.Detail, Coins: tx.Coins, CreatedAt: tx.CreatedAt}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func pagination(r *http.Request) (offset, limit int) {
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return offset, limit
}
