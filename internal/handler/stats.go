package handler

import (
	"net/http"

	"github.com/aidar/collabsphere/internal/middleware"
	"github.com/aidar/collabsphere/internal/service"
)

// StatsHandler обрабатывает эндпоинты дашборда
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats обрабатывает GET /dashboard/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	stats, err := h.statsService.GetUserStats(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetActivity обрабатывает GET /dashboard/activity
func (h *StatsHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	activity, err := h.statsService.GetRecentActivity(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, activity)
}
