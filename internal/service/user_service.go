package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserProfile, error)
}

type userService struct {
	repo        repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewUserService(repo repository.UserRepository, profileRepo repository.ProfileRepository) UserService {
	return &userService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Timezone: timezone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Every user gets a profile with default preferences
	profile := &domain.UserProfile{
		ID:                uuid.New(),
		UserID:            user.ID,
		OptimalSleepHours: 8.0,
		FitnessLevel:      "beginner",
		FitnessGoal:       "general_fitness",
		MotivationStyle:   "balanced",
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.OptimalSleepHours != nil {
		profile.OptimalSleepHours = *req.OptimalSleepHours
	}
	if req.FitnessLevel != nil {
		profile.FitnessLevel = *req.FitnessLevel
	}
	if req.FitnessGoal != nil {
		profile.FitnessGoal = *req.FitnessGoal
	}
	if req.MotivationStyle != nil {
		profile.MotivationStyle = *req.MotivationStyle
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
