package chore

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
	"github.com/PANATARA/chorebank/internal/chore"
)

type Handler struct {
	svc *chore.Service
}

func NewHandler(svc *chore.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{choreID}", h.get)
	r.Delete("/{choreID}", h.deactivate)
}

type choreResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Valuation   decimal.Decimal `json:"valuation"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toResponse(c *chore.Chore) choreResponse {
	return choreResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Valuation:   c.Valuation,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

type createRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Valuation   decimal.Decimal `json:"valuation"`
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

	if req.Valuation.IsNegative() {
		http.Error(w, "valuation cannot be negative", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), *u.FamilyID, &u.ID, chore.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Valuation:   req.Valuation,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	chores, err := h.svc.ListFamily(r.Context(), *u.FamilyID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]choreResponse, len(chores))
	for i, c := range chores {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "choreID"))
	if err != nil {
		http.Error(w, "invalid chore id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil || c.FamilyID != *u.FamilyID {
		http.Error(w, "chore not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "choreID"))
	if err != nil {
		http.Error(w, "invalid chore id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil || c.FamilyID != *u.FamilyID {
		http.Error(w, "chore not found", http.StatusNotFound)
		return
	}

	if err := h.svc.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, chore.ErrNotFound) {
			http.Error(w, "chore not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
