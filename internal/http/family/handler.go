package family

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/family"
	"github.com/PANATARA/chorebank/internal/user"
)

type Handler struct {
	svc    *family.Service
	tokens *auth.Tokens
}

func NewHandler(svc *family.Service, tokens *auth.Tokens) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/join", h.join)
	r.Post("/leave", h.leave)
	r.Get("/", h.get)
	r.Get("/invite", h.invite)
	r.Get("/members", h.members)
	r.Delete("/members/{userID}", h.kick)
	r.Patch("/admin/{userID}", h.setAdmin)
}

type familyResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	AdminID   *uuid.UUID `json:"admin_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toResponse(f *family.Family) familyResponse {
	return familyResponse{
		ID:        f.ID,
		Name:      f.Name,
		Icon:      f.Icon,
		AdminID:   f.AdminID,
		CreatedAt: f.CreatedAt,
	}
}

type createRequest struct {
	Name string `json:"name"`
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

	f, err := h.svc.Create(r.Context(), req.Name, u)
	if err != nil {
		if errors.Is(err, family.ErrAlreadyInFamily) {
			http.Error(w, "already a family member", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type joinRequest struct {
	InviteToken string `json:"invite_token"`
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	familyID, err := h.tokens.ParseInvite(req.InviteToken)
	if err != nil {
		http.Error(w, "invalid invite token", http.StatusBadRequest)
		return
	}

	err = h.svc.AddMember(r.Context(), familyID, u, family.Permissions{
		ShouldConfirmChoreCompletion: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, family.ErrAlreadyInFamily):
			http.Error(w, "already a family member", http.StatusConflict)
		case errors.Is(err, family.ErrNotFound):
			http.Error(w, "family not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) leave(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	err := h.svc.Leave(r.Context(), u)
	if err != nil {
		switch {
		case errors.Is(err, family.ErrNotInFamily):
			http.Error(w, "not a family member", http.StatusConflict)
		case errors.Is(err, family.ErrAdminCannotLeave):
			http.Error(w, "the family admin cannot leave", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	if u.FamilyID == nil {
		http.Error(w, "not a family member", http.StatusNotFound)
		return
	}

	f, err := h.svc.Get(r.Context(), *u.FamilyID)
	if err != nil {
		if errors.Is(err, family.ErrNotFound) {
			http.Error(w, "family not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type inviteResponse struct {
	InviteToken string `json:"invite_token"`
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	if u.FamilyID == nil {
		http.Error(w, "not a family member", http.StatusForbidden)
		return
	}

	allowed, err := h.svc.CanInvite(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !allowed {
		http.Error(w, "not allowed to invite users", http.StatusForbidden)
		return
	}

	token, err := h.tokens.IssueInvite(*u.FamilyID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(inviteResponse{InviteToken: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type memberResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname,omitempty"`
}

func (h *Handler) members(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	if u.FamilyID == nil {
		http.Error(w, "not a family member", http.StatusNotFound)
		return
	}

	members, err := h.svc.Members(r.Context(), *u.FamilyID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]memberResponse, len(members))
	for i, m := range members {
		resp[i] = toMember(m)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toMember(u *user.User) memberResponse {
	return memberResponse{ID: u.ID, Username: u.Username, Name: u.Name, Surname: u.Surname}
}

func (h *Handler) kick(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	memberID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	err = h.svc.Kick(r.Context(), u, memberID)
	if err != nil {
		switch {
		case errors.Is(err, family.ErrNotAdmin):
			http.Error(w, "only the family admin can kick members", http.StatusForbidden)
		case errors.Is(err, family.ErrAdminCannotLeave):
			http.Error(w, "the family admin cannot kick themselves", http.StatusConflict)
		case errors.Is(err, family.ErrNotInFamily):
			http.Error(w, "user is not a member of your family", http.StatusNotFound)
		case errors.Is(err, user.ErrNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setAdmin(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())

	successorID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	err = h.svc.SetAdmin(r.Context(), u, successorID)
	if err != nil {
		switch {
		case errors.Is(err, family.ErrNotAdmin):
			http.Error(w, "only the family admin can appoint a successor", http.StatusForbidden)
		case errors.Is(err, family.ErrNotInFamily):
			http.Error(w, "user is not a member of your family", http.StatusNotFound)
		case errors.Is(err, user.ErrNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, family.ErrNotFound):
			http.Error(w, "family not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
