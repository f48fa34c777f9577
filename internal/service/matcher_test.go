package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/collabsphere/internal/domain"
)

// stubGenerator implements TextGenerator with a canned reply
type stubGenerator struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalogs() ([]*domain.Team, []*domain.User) {
	teams := []*domain.Team{
		{ID: "t1", Name: "Vision Crew", RequiredSkills: []string{"Python"}, Members: 2, MaxMembers: 4},
		{ID: "T2-MixedCase", Name: "Web Wizards", RequiredSkills: []string{"React"}, Members: 1, MaxMembers: 3},
	}
	users := []*domain.User{
		{ID: "u1", Name: "Alice", Skills: []string{"Go", "Python"}},
		{ID: "u2", Name: "Bob", Skills: []string{"React"}},
	}
	return teams, users
}

func TestProjectMatcher_Analyze(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{reply: `Here is my analysis:
{
  "projectAnalysis": "A promising computer vision project.",
  "recommendedTeams": [
    {"teamId": "t1", "score": 87, "reasoning": "Strong Python background"}
  ],
  "suggestedTeammates": [
    {"userId": "u1", "matchScore": 92, "reasoning": "Shared ML interest", "commonInterests": ["AI"]}
  ]
}
Good luck!`}

	matcher := NewProjectMatcher(gen, testLogger())
	result := matcher.Analyze(context.Background(), "build a CV app", teams, users)

	require.Equal(t, 1, gen.calls, "exactly one model call per invocation")

	assert.Equal(t, "A promising computer vision project.", result.ProjectAnalysis)

	require.Len(t, result.RecommendedTeams, 1)
	assert.Equal(t, "t1", result.RecommendedTeams[0].Team.ID)
	assert.Equal(t, 87.0, result.RecommendedTeams[0].Score)
	assert.Equal(t, "Strong Python background", result.RecommendedTeams[0].Reasoning)

	require.Len(t, result.SuggestedTeammates, 1)
	assert.Equal(t, "u1", result.SuggestedTeammates[0].User.ID)
	assert.Equal(t, 92.0, result.SuggestedTeammates[0].MatchScore)
	assert.Equal(t, []string{"AI"}, result.SuggestedTeammates[0].CommonInterests)
}

func TestProjectMatcher_Analyze_NoJSONInReply(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{reply: "Sorry, I am unable to produce recommendations right now."}
	matcher := NewProjectMatcher(gen, testLogger())

	result := matcher.Analyze(context.Background(), "build something", teams, users)

	require.NotNil(t, result)
	assert.Empty(t, result.RecommendedTeams)
	assert.Empty(t, result.SuggestedTeammates)
	assert.NotEmpty(t, result.ProjectAnalysis, "fallback analysis must not be empty")
}

func TestProjectMatcher_Analyze_GeneratorError(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{err: errors.New("connection refused")}
	matcher := NewProjectMatcher(gen, testLogger())

	result := matcher.Analyze(context.Background(), "build something", teams, users)

	require.NotNil(t, result)
	assert.Empty(t, result.RecommendedTeams)
	assert.Empty(t, result.SuggestedTeammates)
	assert.NotEmpty(t, result.ProjectAnalysis)
}

func TestProjectMatcher_Analyze_MalformedJSON(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{reply: `{"projectAnalysis": 42, "recommendedTeams": "oops"}`}
	matcher := NewProjectMatcher(gen, testLogger())

	result := matcher.Analyze(context.Background(), "build something", teams, users)

	assert.Empty(t, result.RecommendedTeams)
	assert.Empty(t, result.SuggestedTeammates)
	assert.NotEmpty(t, result.ProjectAnalysis)
}

// Выдуманные моделью идентификаторы молча отбрасываются
func TestProjectMatcher_Analyze_UnknownIDsDropped(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{reply: `{
  "projectAnalysis": "ok",
  "recommendedTeams": [
    {"teamId": "t1", "score": 80, "reasoning": "real"},
    {"teamId": "hallucinated-team", "score": 95, "reasoning": "fake"}
  ],
  "suggestedTeammates": [
    {"userId": "no-such-user", "matchScore": 90, "reasoning": "fake"},
    {"userId": "u2", "matchScore": 75, "reasoning": "real"}
  ]
}`}

	matcher := NewProjectMatcher(gen, testLogger())
	result := matcher.Analyze(context.Background(), "idea", teams, users)

	require.Len(t, result.RecommendedTeams, 1)
	assert.Equal(t, "t1", result.RecommendedTeams[0].Team.ID)

	require.Len(t, result.SuggestedTeammates, 1)
	assert.Equal(t, "u2", result.SuggestedTeammates[0].User.ID)
}

func TestProjectMatcher_Analyze_MissingCommonInterests(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{reply: `{
  "projectAnalysis": "ok",
  "recommendedTeams": [],
  "suggestedTeammates": [{"userId": "u1", "matchScore": 70, "reasoning": "r"}]
}`}

	matcher := NewProjectMatcher(gen, testLogger())
	result := matcher.Analyze(context.Background(), "idea", teams, users)

	require.Len(t, result.SuggestedTeammates, 1)
	assert.NotNil(t, result.SuggestedTeammates[0].CommonInterests)
	assert.Empty(t, result.SuggestedTeammates[0].CommonInterests)
}

// Идентификаторы в промпте сохраняются байт-в-байт: модель отвечает теми же
// значениями, и они должны резолвиться обратно в записи каталога
func TestProjectMatcher_PromptPreservesIDs(t *testing.T) {
	teams, users := testCatalogs()

	gen := &stubGenerator{reply: `{
  "projectAnalysis": "ok",
  "recommendedTeams": [{"teamId": "T2-MixedCase", "score": 66, "reasoning": "r"}],
  "suggestedTeammates": []
}`}

	matcher := NewProjectMatcher(gen, testLogger())
	result := matcher.Analyze(context.Background(), "idea", teams, users)

	assert.Contains(t, gen.prompt, `"id": "T2-MixedCase"`)
	assert.Contains(t, gen.prompt, `"id": "t1"`)
	assert.Contains(t, gen.prompt, `"id": "u1"`)

	require.Len(t, result.RecommendedTeams, 1)
	assert.Equal(t, "T2-MixedCase", result.RecommendedTeams[0].Team.ID)
}

// В промпт попадает только сокращенная проекция записей
func TestProjectMatcher_PromptOmitsPrivateFields(t *testing.T) {
	teams := []*domain.Team{{ID: "t1", Name: "Crew", MaxMembers: 4}}
	users := []*domain.User{{ID: "u1", Name: "Alice", Email: "alice@uni.example"}}

	gen := &stubGenerator{reply: "no json"}
	matcher := NewProjectMatcher(gen, testLogger())
	matcher.Analyze(context.Background(), "idea", teams, users)

	assert.False(t, strings.Contains(gen.prompt, "alice@uni.example"),
		"user email must not leak into the prompt")
}
