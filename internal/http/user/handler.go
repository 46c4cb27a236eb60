package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/PANATARA/chorebank/internal/auth"
	"github.com/PANATARA/chorebank/internal/user"
)

type Handler struct {
	svc    *user.Service
	tokens *auth.Tokens
}

func NewHandler(svc *user.Service, tokens *auth.Tokens) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.register)
}

func (h *Handler) AuthRoutes(r chi.Router) {
	r.Post("/login", h.login)
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname,omitempty"`
	FamilyID  *uuid.UUID `json:"family_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Surname:   u.Surname,
		FamilyID:  u.FamilyID,
		CreatedAt: u.CreatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		Username: req.Username,
		Name:     req.Name,
		Surname:  req.Surname,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(u)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrBadCredentials) {
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := h.tokens.IssueAccess(u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(loginResponse{AccessToken: token, User: toResponse(u)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
