package usecase

import (
	"context"
	"fmt"

	"cinerate/internal/data/repository"
	"cinerate/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	// GetProfile is public and returns the user's public fields only
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)

	// GetMe returns the caller's own profile including the email
	GetMe(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID format %s", ErrValidation, userID)
	}

	return s.buildProfile(ctx, userUUID, false)
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	return s.buildProfile(ctx, userID, true)
}

func (s *userService) buildProfile(ctx context.Context, userID uuid.UUID, includeEmail bool) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	reviewCount, err := s.repo.Review.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user reviews", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count user reviews: %w", err)
	}

	resp := response.ProfileToResponse(user, reviewCount, includeEmail)
	return &resp, nil
}
