package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"AdminDashboard/internal/config"
	"AdminDashboard/internal/middleware"
	"AdminDashboard/internal/model"
	"AdminDashboard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обслуживает вход, регистрацию и управление пользователями.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// TokenResponse: ответ на вход и регистрацию.
type TokenResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO: пользователь без пароля, id публичный.
type UserDTO struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(u *model.User) UserDTO {
	return UserDTO{ID: u.PublicID, Login: u.Login, Role: u.Role, CreatedAt: u.CreatedAt}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError переводит ошибки сервиса в HTTP-статусы.
func (h *UserHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrLoginTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrLastAdmin):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.Logger.Errorw("user handler failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *UserHandler) issue(w http.ResponseWriter, u *model.User) {
	tok, err := middleware.IssueToken(middleware.Principal{
		UserID:   u.ID,
		PublicID: u.PublicID,
		Role:     u.Role,
	}, h.Config.AuthSecret, h.Config.TokenTTL())
	if err != nil {
		h.Logger.Errorw("issue token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{Token: tok, User: toDTO(u)})
}

// Register регистрация пользователя, сразу выдаёт токен
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.Logger.Infow("user registered", "login", u.Login, "role", u.Role)
	h.issue(w, u)
}

// Login вход по логину и паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.issue(w, u)
}

// Me возвращает текущего пользователя.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	if u, ok := currentUser(r.Context()); ok {
		writeJSON(w, http.StatusOK, toDTO(u))
		return
	}
	p, _ := middleware.PrincipalFromContext(r.Context())
	u, err := h.UserService.Get(r.Context(), p.PublicID)
	if errors.Is(err, service.ErrNotFound) {
		// токен пережил пользователя
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(u))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toDTO(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.UserService.Create(r.Context(), req.Login, req.Password, req.Role)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(u))
}

func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.UserService.SetRole(r.Context(), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(u))
}

func (h *UserHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.UserService.SetPassword(r.Context(), chi.URLParam(r, "id"), req.Password); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
