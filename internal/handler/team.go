package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/middleware"
	"github.com/aidar/collabsphere/internal/service"
)

// TeamHandler обрабатывает эндпоинты команд
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeamsResponse представляет список команд
type ListTeamsResponse struct {
	Teams []*domain.Team `json:"teams"`
}

// TeamResponse представляет одну команду
type TeamResponse struct {
	Team *domain.Team `json:"team"`
}

// ListTeams обрабатывает GET /teams
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if teams == nil {
		teams = []*domain.Team{}
	}

	RespondWithJSON(w, r, http.StatusOK, ListTeamsResponse{Teams: teams})
}

// GetTeam обрабатывает GET /teams/{id}
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TeamResponse{Team: team})
}

// CreateTeam обрабатывает POST /teams.
// Лидером становится текущий пользователь, его профиль фиксируется снимком.
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var team domain.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	// Валидация запроса
	if team.Name == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "name is required")
		return
	}
	if team.MaxMembers <= 0 {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "maxMembers must be positive")
		return
	}

	leaderID := middleware.GetUserIDFromContext(r.Context())

	created, err := h.teamService.CreateTeam(r.Context(), &team, leaderID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TeamResponse{Team: created})
}

// JoinTeam обрабатывает POST /teams/{id}/join
func (h *TeamHandler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	userID := middleware.GetUserIDFromContext(r.Context())

	if err := h.teamService.JoinTeam(r.Context(), teamID, userID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, JoinedResponse{Joined: true})
}

// HasJoined обрабатывает GET /teams/{id}/joined
func (h *TeamHandler) HasJoined(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	userID := middleware.GetUserIDFromContext(r.Context())

	joined, err := h.teamService.HasJoined(r.Context(), teamID, userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, JoinedResponse{Joined: joined})
}

// SearchTeams обрабатывает GET /teams/search?skill=...
func (h *TeamHandler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	skills := r.URL.Query()["skill"]
	if len(skills) == 0 {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "at least one skill query parameter is required")
		return
	}

	teams, err := h.teamService.SearchBySkills(r.Context(), skills)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ListTeamsResponse{Teams: teams})
}
