package service

import (
	"context"
	"strings"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/repository"
)

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// ListTeams returns all teams, newest first
func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, teamID)
}

// CreateTeam creates a team led by the given user. The leader fields are a
// snapshot of the creator's profile, not a live reference.
func (s *TeamService) CreateTeam(ctx context.Context, team *domain.Team, leaderID string) (*domain.Team, error) {
	leader, err := s.userRepo.GetByID(ctx, leaderID)
	if err != nil {
		return nil, err
	}

	team.LeaderID = leader.ID
	team.Leader = domain.TeamLeader{
		Name:       leader.Name,
		Avatar:     leader.Avatar,
		University: leader.University,
		Major:      leader.Major,
	}
	if team.Members == 0 {
		team.Members = 1 // the leader counts as a member
	}

	id, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	return s.teamRepo.GetByID(ctx, id)
}

// JoinTeam adds a user to a team. The display name is denormalized into the
// team's memberNames alongside the ID.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	return s.teamRepo.Join(ctx, teamID, user.ID, user.Name)
}

// HasJoined reports whether the user is a member or the leader of the team
func (s *TeamService) HasJoined(ctx context.Context, teamID, userID string) (bool, error) {
	return s.teamRepo.HasJoined(ctx, teamID, userID)
}

// SearchBySkills returns teams whose required skills or tags contain any of
// the given skill tokens (case-insensitive substring match over the full
// catalog, mirroring the small-catalog scan the platform was built around)
func (s *TeamService) SearchBySkills(ctx context.Context, skills []string) ([]*domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Team, 0)
	for _, team := range teams {
		if teamMatchesSkills(team, skills) {
			matched = append(matched, team)
		}
	}

	return matched, nil
}

func teamMatchesSkills(team *domain.Team, skills []string) bool {
	for _, skill := range skills {
		needle := strings.ToLower(skill)
		for _, required := range team.RequiredSkills {
			if strings.Contains(strings.ToLower(required), needle) {
				return true
			}
		}
		for _, tag := range team.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}
