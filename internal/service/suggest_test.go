package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/collabsphere/internal/domain"
)

// fakeTeamRepo is an in-memory repository.TeamRepository
type fakeTeamRepo struct {
	teams   []*domain.Team
	listErr error
}

func (f *fakeTeamRepo) List(_ context.Context) ([]*domain.Team, error) {
	return f.teams, f.listErr
}

func (f *fakeTeamRepo) GetByID(_ context.Context, teamID string) (*domain.Team, error) {
	for _, t := range f.teams {
		if t.ID == teamID {
			return t, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

func (f *fakeTeamRepo) Create(_ context.Context, _ *domain.Team) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeTeamRepo) Join(_ context.Context, _, _, _ string) error {
	return errors.New("not implemented")
}

func (f *fakeTeamRepo) HasJoined(_ context.Context, teamID, userID string) (bool, error) {
	for _, t := range f.teams {
		if t.ID == teamID {
			return t.HasMember(userID), nil
		}
	}
	return false, nil
}

// fakeUserRepo is an in-memory repository.UserRepository
type fakeUserRepo struct {
	users   []*domain.User
	listErr error
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, _ *domain.User) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeUserRepo) Update(_ context.Context, _ string, _ *domain.UserUpdate) error {
	return errors.New("not implemented")
}

// fakeAnalyzer records invocations and returns a canned result
type fakeAnalyzer struct {
	result *domain.MatchResult
	calls  int
	users  []*domain.User
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string, _ []*domain.Team, users []*domain.User) *domain.MatchResult {
	f.calls++
	f.users = users
	return f.result
}

func TestSuggestionService_Suggest_EmptyIdeaRejectedBeforeModelCall(t *testing.T) {
	analyzer := &fakeAnalyzer{result: fallbackResult()}
	svc := NewSuggestionService(&fakeTeamRepo{}, &fakeUserRepo{}, analyzer, testLogger())

	for _, idea := range []string{"", "   ", "\n\t"} {
		result, err := svc.Suggest(context.Background(), "u1", idea)
		assert.ErrorIs(t, err, domain.ErrEmptyIdea)
		assert.Nil(t, result)
	}

	assert.Equal(t, 0, analyzer.calls, "the model must not be invoked for empty input")
}

func TestSuggestionService_Suggest_AnnotatesJoinStatus(t *testing.T) {
	joined := &domain.Team{ID: "t1", Name: "Joined Crew", MemberIDs: []string{"u1"}, Members: 2, MaxMembers: 4}
	open := &domain.Team{ID: "t2", Name: "Open Crew", Members: 1, MaxMembers: 4}

	analyzer := &fakeAnalyzer{result: &domain.MatchResult{
		ProjectAnalysis: "looks good",
		RecommendedTeams: []domain.TeamRecommendation{
			{Team: joined, Score: 80, Reasoning: "a"},
			{Team: open, Score: 75, Reasoning: "b"},
		},
		SuggestedTeammates: []domain.TeammateMatch{},
	}}

	svc := NewSuggestionService(
		&fakeTeamRepo{teams: []*domain.Team{joined, open}},
		&fakeUserRepo{users: []*domain.User{{ID: "u1"}}},
		analyzer,
		testLogger(),
	)

	result, err := svc.Suggest(context.Background(), "u1", "build a robot")
	require.NoError(t, err)

	require.Len(t, result.RecommendedTeams, 2)
	assert.True(t, result.RecommendedTeams[0].AlreadyJoined)
	assert.False(t, result.RecommendedTeams[1].AlreadyJoined)
	assert.Equal(t, "looks good", result.ProjectAnalysis)
}

func TestSuggestionService_Suggest_ExcludesSelfFromCandidates(t *testing.T) {
	analyzer := &fakeAnalyzer{result: fallbackResult()}
	svc := NewSuggestionService(
		&fakeTeamRepo{},
		&fakeUserRepo{users: []*domain.User{{ID: "u1"}, {ID: "u2"}}},
		analyzer,
		testLogger(),
	)

	_, err := svc.Suggest(context.Background(), "u1", "an idea")
	require.NoError(t, err)

	require.Len(t, analyzer.users, 1)
	assert.Equal(t, "u2", analyzer.users[0].ID)
}

// Отказ хранилища на загрузке каталога не должен ронять запрос
func TestSuggestionService_Suggest_StoreFailureDegradesToFallback(t *testing.T) {
	analyzer := &fakeAnalyzer{result: fallbackResult()}
	svc := NewSuggestionService(
		&fakeTeamRepo{listErr: errors.New("connection reset")},
		&fakeUserRepo{},
		analyzer,
		testLogger(),
	)

	result, err := svc.Suggest(context.Background(), "u1", "an idea")
	require.NoError(t, err)

	assert.Equal(t, 0, analyzer.calls)
	assert.Empty(t, result.RecommendedTeams)
	assert.Empty(t, result.SuggestedTeammates)
	assert.NotEmpty(t, result.ProjectAnalysis)
}
