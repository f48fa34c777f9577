package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/middleware"
	"github.com/aidar/collabsphere/internal/service"
)

// EventHandler обрабатывает эндпоинты мероприятий
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler создает новый EventHandler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEventsResponse представляет список мероприятий
type ListEventsResponse struct {
	Events []*domain.Event `json:"events"`
}

// EventResponse представляет одно мероприятие
type EventResponse struct {
	Event *domain.Event `json:"event"`
}

// JoinedResponse представляет статус членства
type JoinedResponse struct {
	Joined bool `json:"joined"`
}

// ListEvents обрабатывает GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if events == nil {
		events = []*domain.Event{}
	}

	RespondWithJSON(w, r, http.StatusOK, ListEventsResponse{Events: events})
}

// GetEvent обрабатывает GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	event, err := h.eventService.GetEvent(r.Context(), eventID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, EventResponse{Event: event})
}

// CreateEvent обрабатывает POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event domain.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	// Валидация запроса
	if event.Name == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "name is required")
		return
	}
	if event.MaxParticipants <= 0 {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "maxParticipants must be positive")
		return
	}

	event.CreatorID = middleware.GetUserIDFromContext(r.Context())

	created, err := h.eventService.CreateEvent(r.Context(), &event)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, EventResponse{Event: created})
}

// JoinEvent обрабатывает POST /events/{id}/join
func (h *EventHandler) JoinEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	userID := middleware.GetUserIDFromContext(r.Context())

	if err := h.eventService.JoinEvent(r.Context(), eventID, userID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, JoinedResponse{Joined: true})
}

// HasJoined обрабатывает GET /events/{id}/joined
func (h *EventHandler) HasJoined(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	userID := middleware.GetUserIDFromContext(r.Context())

	joined, err := h.eventService.HasJoined(r.Context(), eventID, userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, JoinedResponse{Joined: joined})
}
