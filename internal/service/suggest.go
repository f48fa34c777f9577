package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/repository"
)

// ProjectAnalyzer is the matching workflow contract the suggestion surface
// consumes
type ProjectAnalyzer interface {
	Analyze(ctx context.Context, idea string, teams []*domain.Team, users []*domain.User) *domain.MatchResult
}

// TeamSuggestion is a recommended team annotated with the caller's live
// join status so the client can disable the join affordance
type TeamSuggestion struct {
	Team          *domain.Team `json:"team"`
	Score         float64      `json:"score"`
	Reasoning     string       `json:"reasoning"`
	AlreadyJoined bool         `json:"alreadyJoined"`
}

// SuggestionResult is the full AI suggestion response for one request
type SuggestionResult struct {
	ProjectAnalysis    string                 `json:"projectAnalysis"`
	RecommendedTeams   []TeamSuggestion       `json:"recommendedTeams"`
	SuggestedTeammates []domain.TeammateMatch `json:"suggestedTeammates"`
}

// SuggestionService assembles AI recommendations for a user's project idea
type SuggestionService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	matcher  ProjectAnalyzer
	logger   *slog.Logger
}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	matcher ProjectAnalyzer,
	logger *slog.Logger,
) *SuggestionService {
	return &SuggestionService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		matcher:  matcher,
		logger:   logger,
	}
}

// Suggest runs the matching workflow for the given user and idea.
// An empty or whitespace-only idea is rejected before any catalog read or
// model call. Store and provider failures degrade to a fallback result:
// this path never fails the client on an AI-provider problem.
func (s *SuggestionService) Suggest(ctx context.Context, userID, idea string) (*SuggestionResult, error) {
	if strings.TrimSpace(idea) == "" {
		return nil, domain.ErrEmptyIdea
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		s.logger.Warn("failed to load team catalog", "error", err)
		return fallbackSuggestion(), nil
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Warn("failed to load user catalog", "error", err)
		return fallbackSuggestion(), nil
	}

	// Не предлагаем пользователя самому себе в качестве тиммейта
	candidates := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != userID {
			candidates = append(candidates, u)
		}
	}

	result := s.matcher.Analyze(ctx, idea, teams, candidates)

	// Статус членства запрашивается заново для каждой видимой записи,
	// без кэширования: O(n) обращений на небольших каталогах.
	recommended := make([]TeamSuggestion, 0, len(result.RecommendedTeams))
	for _, rec := range result.RecommendedTeams {
		joined, err := s.teamRepo.HasJoined(ctx, rec.Team.ID, userID)
		if err != nil {
			s.logger.Warn("failed to check join status", "team_id", rec.Team.ID, "error", err)
			joined = false
		}
		recommended = append(recommended, TeamSuggestion{
			Team:          rec.Team,
			Score:         rec.Score,
			Reasoning:     rec.Reasoning,
			AlreadyJoined: joined,
		})
	}

	return &SuggestionResult{
		ProjectAnalysis:    result.ProjectAnalysis,
		RecommendedTeams:   recommended,
		SuggestedTeammates: result.SuggestedTeammates,
	}, nil
}

func fallbackSuggestion() *SuggestionResult {
	return &SuggestionResult{
		ProjectAnalysis:    fallbackAnalysis,
		RecommendedTeams:   []TeamSuggestion{},
		SuggestedTeammates: []domain.TeammateMatch{},
	}
}
