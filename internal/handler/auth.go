package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/service"
)

// AuthHandler обрабатывает эндпоинты аутентификации
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email string `json:"email"`
}

// LoginResponse представляет ответ с токеном
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.Email == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "email is required")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token, User: user})
}
