package confirmation

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
	"github.com/PANATARA/chorebank/internal/completion"
)

type Handler struct {
	svc *completion.Service
}

func NewHandler(svc *completion.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Patch("/{confirmationID}", h.setStatus)
}

type confirmationResponse struct {
	ID               uuid.UUID         `json:"id"`
	Status           completion.Status `json:"status"`
	CompletionID     uuid.UUID         `json:"completion_id"`
	CompletionStatus completion.Status `json:"completion_status"`
	Message          string            `json:"message"`
	ChoreName        string            `json:"chore_name"`
	ChoreValuation   decimal.Decimal   `json:"chore_valuation"`
	CompletedBy      string            `json:"completed_by"`
	CreatedAt        time.Time         `json:"created_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	var status *completion.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := completion.Status(raw)
		if !s.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		status = &s
	}

	pending, err := h.svc.UserConfirmations(r.Context(), u.ID, status)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]confirmationResponse, len(pending))
	for i, p := range pending {
		resp[i] = confirmationResponse{
			ID:               p.ID,
			Status:           p.Status,
			CompletionID:     p.CompletionID,
			CompletionStatus: p.CompletionStatus,
			Message:          p.Message,
			ChoreName:        p.ChoreName,
			ChoreValuation:   p.ChoreValuation,
			CompletedBy:      p.CompletedBy,
			CreatedAt:        p.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setStatusRequest struct {
	Status completion.Status `json:"status"`
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "confirmationID"))
	if err != nil {
		http.Error(w, "invalid confirmation id", http.StatusBadRequest)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.SetConfirmationStatus(r.Context(), u.ID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, completion.ErrInvalidStatus):
			http.Error(w, "status must be approved or canceled", http.StatusBadRequest)
		case errors.Is(err, completion.ErrConfirmationNotFound):
			http.Error(w, "confirmation not found", http.StatusNotFound)
		case errors.Is(err, completion.ErrCannotBeChanged):
			http.Error(w, "completion can no longer be changed", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
