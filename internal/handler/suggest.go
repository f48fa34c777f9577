package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/collabsphere/internal/middleware"
	"github.com/aidar/collabsphere/internal/service"
)

// SuggestHandler обрабатывает эндпоинты AI-рекомендаций
type SuggestHandler struct {
	suggestionService *service.SuggestionService
	skillExtractor    *service.SkillExtractor
}

// NewSuggestHandler создает новый SuggestHandler
func NewSuggestHandler(suggestionService *service.SuggestionService, skillExtractor *service.SkillExtractor) *SuggestHandler {
	return &SuggestHandler{
		suggestionService: suggestionService,
		skillExtractor:    skillExtractor,
	}
}

// SuggestRequest представляет запрос на анализ идеи проекта
type SuggestRequest struct {
	Idea string `json:"idea"`
}

// ExtractSkillsRequest представляет запрос на извлечение навыков
type ExtractSkillsRequest struct {
	Description string `json:"description"`
}

// ExtractSkillsResponse представляет список извлеченных навыков
type ExtractSkillsResponse struct {
	Skills []string `json:"skills"`
}

// Suggest обрабатывает POST /suggest
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())

	result, err := h.suggestionService.Suggest(r.Context(), userID, req.Idea)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// ExtractSkills обрабатывает POST /suggest/skills
func (h *SuggestHandler) ExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.Description == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "description is required")
		return
	}

	skills := h.skillExtractor.ExtractSkills(r.Context(), req.Description)

	RespondWithJSON(w, r, http.StatusOK, ExtractSkillsResponse{Skills: skills})
}
