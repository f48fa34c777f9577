package service

import (
	"context"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/repository"
)

// EventService handles business logic for events
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// ListEvents returns all events, newest first
func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

// CreateEvent creates a new event and returns it with the assigned ID
func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// JoinEvent registers a user as event participant.
// Capacity and duplicate checks happen atomically in the repository.
func (s *EventService) JoinEvent(ctx context.Context, eventID, userID string) error {
	return s.eventRepo.Join(ctx, eventID, userID)
}

// HasJoined reports whether the user is already a participant
func (s *EventService) HasJoined(ctx context.Context, eventID, userID string) (bool, error) {
	return s.eventRepo.HasJoined(ctx, eventID, userID)
}
