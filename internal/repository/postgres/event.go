package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/collabsphere/internal/domain"
)

// EventRepository реализует repository.EventRepository для PostgreSQL
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository создает новый экземпляр EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `
	id::text, name, description, date, location, tags,
	participants, max_participants, status, difficulty, prizes,
	organizer, creator_id, featured, participant_ids, created_at
`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.Tags,
		&e.Participants, &e.MaxParticipants, &e.Status, &e.Difficulty, &e.Prizes,
		&e.Organizer, &e.CreatorID, &e.Featured, &e.ParticipantIDs, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List возвращает все мероприятия, новые первыми
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// GetByID получает мероприятие по ID
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id::text = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// Create создает мероприятие и возвращает присвоенный ID
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (string, error) {
	query := `
		INSERT INTO events (
			name, description, date, location, tags,
			participants, max_participants, status, difficulty, prizes,
			organizer, creator_id, featured, participant_ids
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id::text
	`

	tags := event.Tags
	if tags == nil {
		tags = []string{}
	}
	participantIDs := event.ParticipantIDs
	if participantIDs == nil {
		participantIDs = []string{}
	}

	var id string
	err := r.db.QueryRow(ctx, query,
		event.Name, event.Description, event.Date, event.Location, tags,
		event.Participants, event.MaxParticipants, event.Status, event.Difficulty, event.Prizes,
		event.Organizer, event.CreatorID, event.Featured, participantIDs,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

// Join записывает пользователя на мероприятие.
// Проверка вместимости и добавление в список участников выполняются одним
// условным UPDATE: два конкурентных вступления не могут превысить лимит.
func (r *EventRepository) Join(ctx context.Context, eventID, userID string) error {
	query := `
		UPDATE events
		SET participants = participants + 1,
		    participant_ids = array_append(participant_ids, $2)
		WHERE id::text = $1
		  AND participants < max_participants
		  AND NOT ($2 = ANY(participant_ids))
	`

	result, err := r.db.Exec(ctx, query, eventID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return r.classifyJoinFailure(ctx, eventID, userID)
	}

	return nil
}

// classifyJoinFailure определяет причину отказа условного UPDATE
func (r *EventRepository) classifyJoinFailure(ctx context.Context, eventID, userID string) error {
	query := `
		SELECT participants >= max_participants, $2 = ANY(participant_ids)
		FROM events
		WHERE id::text = $1
	`

	var full, joined bool
	err := r.db.QueryRow(ctx, query, eventID, userID).Scan(&full, &joined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return err
	}

	if joined {
		return domain.ErrAlreadyJoined
	}
	if full {
		return domain.ErrEventFull
	}

	// Состояние изменилось между UPDATE и SELECT, просим клиента повторить
	return domain.ErrEventFull
}

// HasJoined проверяет, записан ли пользователь на мероприятие
func (r *EventRepository) HasJoined(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT $2 = ANY(participant_ids) FROM events WHERE id::text = $1`

	var joined bool
	err := r.db.QueryRow(ctx, query, eventID, userID).Scan(&joined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return joined, nil
}
