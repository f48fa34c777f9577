package domain

import "time"

// EventStatus представляет статус мероприятия
type EventStatus string

// Возможные статусы мероприятия
const (
	EventStatusUpcoming     EventStatus = "upcoming"     // Мероприятие анонсировано
	EventStatusRegistration EventStatus = "registration" // Открыта регистрация участников
)

// Event представляет мероприятие (хакатон, митап и т.д.)
type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Date            string      `json:"date"`
	Location        string      `json:"location"`
	Tags            []string    `json:"tags"`
	Participants    int         `json:"participants"`
	MaxParticipants int         `json:"maxParticipants"`
	Status          EventStatus `json:"status"`
	Difficulty      string      `json:"difficulty"`
	Prizes          string      `json:"prizes"`
	Organizer       string      `json:"organizer"`
	CreatorID       string      `json:"creatorId,omitempty"`
	Featured        bool        `json:"featured,omitempty"`
	ParticipantIDs  []string    `json:"participantIds"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// IsFull возвращает true если достигнут лимит участников
func (e *Event) IsFull() bool {
	return e.Participants >= e.MaxParticipants
}

// HasParticipant проверяет, записан ли пользователь на мероприятие
func (e *Event) HasParticipant(userID string) bool {
	for _, id := range e.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}
