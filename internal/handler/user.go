package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/middleware"
	"github.com/aidar/collabsphere/internal/service"
)

// UserHandler обрабатывает эндпоинты профилей пользователей
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsersResponse представляет список профилей
type ListUsersResponse struct {
	Users []*domain.User `json:"users"`
}

// UserResponse представляет один профиль
type UserResponse struct {
	User *domain.User `json:"user"`
}

// ListUsers обрабатывает GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if users == nil {
		users = []*domain.User{}
	}

	RespondWithJSON(w, r, http.StatusOK, ListUsersResponse{Users: users})
}

// GetUser обрабатывает GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// CreateUser обрабатывает POST /users (создание профиля при регистрации)
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	// Валидация запроса
	if user.Name == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "name is required")
		return
	}
	if user.Email == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "email is required")
		return
	}

	created, err := h.userService.CreateUser(r.Context(), &user)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, UserResponse{User: created})
}

// Me обрабатывает GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// UpdateMe обрабатывает PATCH /users/me (частичное обновление профиля)
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var update domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())

	user, err := h.userService.UpdateUser(r.Context(), userID, &update)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// SearchUsers обрабатывает GET /users/search?skill=...
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	skills := r.URL.Query()["skill"]
	if len(skills) == 0 {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "at least one skill query parameter is required")
		return
	}

	users, err := h.userService.SearchBySkills(r.Context(), skills)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ListUsersResponse{Users: users})
}
