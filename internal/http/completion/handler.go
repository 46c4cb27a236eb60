package completion

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/chore"
	"github.com/PANATARA/chorebank/internal/completion"
)

type Handler struct {
	svc    *completion.Service
	chores *chore.Service
}

func NewHandler(svc *completion.Service, chores *chore.Service) *Handler {
	return &Handler{svc: svc, chores: chores}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/{id}", h.create)
	r.Get("/{id}", h.get)
}

type completionResponse struct {
	ID        uuid.UUID         `json:"id"`
	ChoreID   *uuid.UUID        `json:"chore_id,omitempty"`
	Status    completion.Status `json:"status"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

func toResponse(c *completion.ChoreCompletion) completionResponse {
	return completionResponse{
		ID:        c.ID,
		ChoreID:   c.ChoreID,
		Status:    c.Status,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

type createRequest struct {
	Message string `json:"message"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	choreID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid chore id", http.StatusBadRequest)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ch, err := h.chores.Get(r.Context(), choreID)
	if err != nil || ch.FamilyID != *u.FamilyID {
		http.Error(w, "chore not found", http.StatusNotFound)
		return
	}

	c, err := h.svc.Create(r.Context(), u, ch, req.Message)
	if err != nil {
		if errors.Is(err, chore.ErrNotFound) {
			http.Error(w, "chore not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type viewResponse struct {
	ID          uuid.UUID         `json:"id"`
	Status      completion.Status `json:"status"`
	Message     string            `json:"message"`
	ChoreName   string            `json:"chore_name"`
	CompletedBy string            `json:"completed_by"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	filter := completion.ListFilter{FamilyID: *u.FamilyID}
	filter.Offset, filter.Limit = pagination(r)

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := completion.Status(raw)
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		filter.Status = &status
	}

	if raw := r.URL.Query().Get("chore_id"); raw != "" {
		choreID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid chore id", http.StatusBadRequest)
			return
		}

		filter.ChoreID = &choreID
	}

	views, err := h.svc.ListFamily(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]viewResponse, len(views))
	for i, v := range views {
		resp[i] = viewResponse{
			ID:          v.ID,
			Status:      v.Status,
			Message:     v.Message,
			ChoreName:   v.ChoreName,
			CompletedBy: v.CompletedBy,
			CreatedAt:   v.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid completion id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil || c.FamilyID != *u.FamilyID {
		http.Error(w, "completion not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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
