package service

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/repository"
)

// DashboardStats represents a user's aggregated activity counters
type DashboardStats struct {
	TeamsJoined   int `json:"teamsJoined"`
	EventsJoined  int `json:"eventsJoined"`
	TeamsCreated  int `json:"teamsCreated"`
	EventsCreated int `json:"eventsCreated"`
	SkillMatches  int `json:"skillMatches"`
}

// RecentActivity represents the dashboard activity feed
type RecentActivity struct {
	RecentTeamJoins  []*domain.Team  `json:"recentTeamJoins"`
	RecentEventJoins []*domain.Event `json:"recentEventJoins"`
	// TODO: count real invitations once an invitations collection exists.
	// Always 0 for now.
	PendingInvitations int `json:"pendingInvitations"`
}

// StatsService handles dashboard statistics queries
type StatsService struct {
	db        *pgxpool.Pool
	eventRepo repository.EventRepository
	teamRepo  repository.TeamRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(db *pgxpool.Pool, eventRepo repository.EventRepository, teamRepo repository.TeamRepository) *StatsService {
	return &StatsService{
		db:        db,
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
	}
}

// GetUserStats returns the user's dashboard counters
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM teams WHERE $1 = ANY(member_ids) OR leader_id = $1),
			(SELECT COUNT(*) FROM teams WHERE leader_id = $1),
			(SELECT COUNT(*) FROM events WHERE $1 = ANY(participant_ids)),
			(SELECT COUNT(*) FROM events WHERE creator_id = $1)
	`

	err := s.db.QueryRow(ctx, countsQuery, userID).Scan(
		&stats.TeamsJoined,
		&stats.TeamsCreated,
		&stats.EventsJoined,
		&stats.EventsCreated,
	)
	if err != nil {
		return nil, err
	}

	// Команды, где хотя бы один требуемый навык входит в навыки пользователя
	skillMatchQuery := `
		SELECT COUNT(*)
		FROM teams t
		WHERE EXISTS (
			SELECT 1
			FROM unnest(t.required_skills) AS req(skill)
			JOIN unnest((SELECT u.skills FROM users u WHERE u.id::text = $1)) AS mine(skill)
			  ON mine.skill ILIKE '%' || req.skill || '%'
		)
	`

	if err := s.db.QueryRow(ctx, skillMatchQuery, userID).Scan(&stats.SkillMatches); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetRecentActivity returns the three newest team and event memberships.
// Full-catalog scans are acceptable at the catalog sizes in scope.
func (s *StatsService) GetRecentActivity(ctx context.Context, userID string) (*RecentActivity, error) {
	activity := &RecentActivity{
		RecentTeamJoins:  []*domain.Team{},
		RecentEventJoins: []*domain.Event{},
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, team := range teams {
		if team.HasMember(userID) {
			activity.RecentTeamJoins = append(activity.RecentTeamJoins, team)
			if len(activity.RecentTeamJoins) == 3 {
				break
			}
		}
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		if event.HasParticipant(userID) {
			activity.RecentEventJoins = append(activity.RecentEventJoins, event)
			if len(activity.RecentEventJoins) == 3 {
				break
			}
		}
	}

	return activity, nil
}
