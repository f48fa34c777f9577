package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aidar/collabsphere/internal/ai"
	"github.com/aidar/collabsphere/internal/domain"
)

// fallbackAnalysis is returned whenever the model call or its reply cannot be
// used. The matcher must never surface an error to the caller.
const fallbackAnalysis = "Unable to analyze project at this time. Please try again later."

// TextGenerator is the single-call text completion contract the matcher needs
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ProjectMatcher analyzes a project idea against the team and user catalogs
// using an external model. All ranking judgment is delegated to the model;
// scores are passed through as-is.
type ProjectMatcher struct {
	generator TextGenerator
	logger    *slog.Logger
}

// NewProjectMatcher creates a new ProjectMatcher
func NewProjectMatcher(generator TextGenerator, logger *slog.Logger) *ProjectMatcher {
	return &ProjectMatcher{
		generator: generator,
		logger:    logger,
	}
}

// teamContext is the reduced team projection serialized into the prompt.
// Only matchable attributes are included to bound prompt size.
type teamContext struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Idea           string   `json:"idea"`
	RequiredSkills []string `json:"requiredSkills"`
	CurrentSkills  []string `json:"currentSkills"`
	Category       string   `json:"category"`
	Stage          string   `json:"stage"`
	Tags           []string `json:"tags"`
	Members        int      `json:"members"`
	MaxMembers     int      `json:"maxMembers"`
}

// userContext is the reduced user projection serialized into the prompt
type userContext struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	University   string   `json:"university"`
	Major        string   `json:"major"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Bio          string   `json:"bio"`
	Availability string   `json:"availability"`
	Rating       float64  `json:"rating"`
}

// matcherResponse is the fixed JSON shape expected inside the model's reply
type matcherResponse struct {
	ProjectAnalysis  string `json:"projectAnalysis"`
	RecommendedTeams []struct {
		TeamID    string  `json:"teamId"`
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	} `json:"recommendedTeams"`
	SuggestedTeammates []struct {
		UserID          string   `json:"userId"`
		MatchScore      float64  `json:"matchScore"`
		Reasoning       string   `json:"reasoning"`
		CommonInterests []string `json:"commonInterests"`
	} `json:"suggestedTeammates"`
}

// Analyze runs the full matching workflow: build prompt, one model call,
// parse, resolve IDs back to catalog records. Any failure degrades to an
// empty result with a fallback analysis message.
func (m *ProjectMatcher) Analyze(
	ctx context.Context,
	idea string,
	teams []*domain.Team,
	users []*domain.User,
) *domain.MatchResult {
	prompt, err := m.buildPrompt(idea, teams, users)
	if err != nil {
		m.logger.Error("failed to build matcher prompt", "error", err)
		return fallbackResult()
	}

	text, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		m.logger.Warn("model call failed", "error", err)
		return fallbackResult()
	}

	payload, ok := ai.ExtractJSONObject(text)
	if !ok {
		m.logger.Warn("no JSON object found in model reply")
		return fallbackResult()
	}

	var resp matcherResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		m.logger.Warn("failed to decode model reply", "error", err)
		return fallbackResult()
	}

	return m.resolve(&resp, teams, users)
}

// buildPrompt serializes the idea and reduced catalog projections into the
// instruction prompt
func (m *ProjectMatcher) buildPrompt(idea string, teams []*domain.Team, users []*domain.User) (string, error) {
	teamsContext := make([]teamContext, 0, len(teams))
	for _, t := range teams {
		teamsContext = append(teamsContext, teamContext{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			Idea:           t.Idea,
			RequiredSkills: t.RequiredSkills,
			CurrentSkills:  t.CurrentSkills,
			Category:       t.Category,
			Stage:          t.Stage,
			Tags:           t.Tags,
			Members:        t.Members,
			MaxMembers:     t.MaxMembers,
		})
	}

	usersContext := make([]userContext, 0, len(users))
	for _, u := range users {
		usersContext = append(usersContext, userContext{
			ID:           u.ID,
			Name:         u.Name,
			University:   u.University,
			Major:        u.Major,
			Skills:       u.Skills,
			Experience:   u.Experience,
			Bio:          u.Bio,
			Availability: u.Availability,
			Rating:       u.Rating,
		})
	}

	teamsJSON, err := json.MarshalIndent(teamsContext, "", "  ")
	if err != nil {
		return "", err
	}
	usersJSON, err := json.MarshalIndent(usersContext, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`
You are an AI assistant for CollabSphere, a student collaboration platform. Analyze the following project idea and provide recommendations.

PROJECT IDEA:
%q

AVAILABLE TEAMS:
%s

AVAILABLE USERS:
%s

Please provide a JSON response with the following structure:
{
  "projectAnalysis": "Brief analysis of the project idea, its potential, and key requirements",
  "recommendedTeams": [
    {
      "teamId": "team_id",
      "score": 85,
      "reasoning": "Why this team is a good match"
    }
  ],
  "suggestedTeammates": [
    {
      "userId": "user_id",
      "matchScore": 92,
      "reasoning": "Why this person would be a great teammate",
      "commonInterests": ["AI", "Web Development"]
    }
  ]
}

Focus on:
1. Skill compatibility and complementarity
2. Project stage alignment
3. Availability and commitment levels
4. University/location proximity when relevant
5. Experience levels that match project complexity

Provide realistic scores (60-95 range) and detailed reasoning for each recommendation.
`, idea, teamsJSON, usersJSON)

	return prompt, nil
}

// resolve maps the model's IDs back to full catalog records. IDs the model
// invented are dropped without an error.
func (m *ProjectMatcher) resolve(resp *matcherResponse, teams []*domain.Team, users []*domain.User) *domain.MatchResult {
	teamsByID := make(map[string]*domain.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}
	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	recommendedTeams := make([]domain.TeamRecommendation, 0, len(resp.RecommendedTeams))
	for _, rec := range resp.RecommendedTeams {
		team, ok := teamsByID[rec.TeamID]
		if !ok {
			m.logger.Debug("dropping unknown team id from model reply", "team_id", rec.TeamID)
			continue
		}
		recommendedTeams = append(recommendedTeams, domain.TeamRecommendation{
			Team:      team,
			Score:     rec.Score,
			Reasoning: rec.Reasoning,
		})
	}

	suggestedTeammates := make([]domain.TeammateMatch, 0, len(resp.SuggestedTeammates))
	for _, sug := range resp.SuggestedTeammates {
		user, ok := usersByID[sug.UserID]
		if !ok {
			m.logger.Debug("dropping unknown user id from model reply", "user_id", sug.UserID)
			continue
		}
		interests := sug.CommonInterests
		if interests == nil {
			interests = []string{}
		}
		suggestedTeammates = append(suggestedTeammates, domain.TeammateMatch{
			User:            user,
			MatchScore:      sug.MatchScore,
			CommonInterests: interests,
			Reasoning:       sug.Reasoning,
		})
	}

	analysis := resp.ProjectAnalysis
	if analysis == "" {
		analysis = "Project analysis not available."
	}

	return &domain.MatchResult{
		ProjectAnalysis:    analysis,
		RecommendedTeams:   recommendedTeams,
		SuggestedTeammates: suggestedTeammates,
	}
}

func fallbackResult() *domain.MatchResult {
	return &domain.MatchResult{
		ProjectAnalysis:    fallbackAnalysis,
		RecommendedTeams:   []domain.TeamRecommendation{},
		SuggestedTeammates: []domain.TeammateMatch{},
	}
}
