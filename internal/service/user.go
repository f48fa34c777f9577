package service

import (
	"context"
	"strings"

	"github.com/aidar/collabsphere/internal/domain"
	"github.com/aidar/collabsphere/internal/repository"
)

// UserService handles business logic for user profiles
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all profiles, newest first
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser retrieves a profile by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetUserByEmail retrieves a profile by its informal natural key
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// CreateUser creates a profile and returns it with the assigned ID
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies a partial profile update and returns the fresh profile
func (s *UserService) UpdateUser(ctx context.Context, userID string, update *domain.UserUpdate) (*domain.User, error) {
	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// SearchBySkills returns users whose skills contain any of the given tokens
// (case-insensitive substring match over the full catalog)
func (s *UserService) SearchBySkills(ctx context.Context, skills []string) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.User, 0)
	for _, user := range users {
		if userMatchesSkills(user, skills) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}

func userMatchesSkills(user *domain.User, skills []string) bool {
	for _, skill := range skills {
		needle := strings.ToLower(skill)
		for _, userSkill := range user.Skills {
			if strings.Contains(strings.ToLower(userSkill), needle) {
				return true
			}
		}
	}
	return false
}
