package product

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/product"
	"github.com/PANATARA/chorebank/internal/wallet"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/mine", h.listMine)
	r.Post("/{productID}/buy", h.buy)
}

type productResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	SellerID    *uuid.UUID      `json:"seller_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Icon:        p.Icon,
		Price:       p.Price,
		IsActive:    p.IsActive,
		SellerID:    p.SellerID,
		CreatedAt:   p.CreatedAt,
	}
}

type createRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Price       decimal.Decimal `json:"price"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if !req.Price.IsPositive() {
		http.Error(w, "price must be positive", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), u, *u.FamilyID, product.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	products, err := h.svc.ListForBuyer(r.Context(), *u.FamilyID, u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	products, err := h.svc.ListMine(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type buyResponse struct {
	ID        uuid.UUID       `json:"id"`
	Detail    string          `json:"detail"`
	Coins     decimal.Decimal `json:"coins"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Buy(r.Context(), u, id)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, product.ErrSelfPurchase):
			http.Error(w, "cannot buy your own product", http.StatusConflict)
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

	resp := buyResponse{ID: tx.ID, Detail: tx.Detail, Coins: tx.Coins, CreatedAt: tx.CreatedAt}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
