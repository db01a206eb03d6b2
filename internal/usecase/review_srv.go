package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinerate/internal/data/entity"
	"cinerate/internal/data/repository"
	"cinerate/internal/dto/request"
	"cinerate/internal/dto/response"
	"cinerate/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Public endpoints
	GetMovieReviews(ctx context.Context, tmdbMovieID int64) ([]response.ReviewWithAuthorResponse, error)
	GetUserReviews(ctx context.Context, userID string, req *request.CursorRequest) (*response.CursorPaginatedResponse[response.ReviewResponse], error)

	// Authenticated endpoints, userID comes from the caller's session
	GetMyReviews(ctx context.Context, userID uuid.UUID, req *request.CursorRequest) (*response.CursorPaginatedResponse[response.ReviewResponse], error)
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetMovieReviews(ctx context.Context, tmdbMovieID int64) ([]response.ReviewWithAuthorResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, tmdbMovieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.Int64("tmdb_movie_id", tmdbMovieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewWithAuthorResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewWithAuthorToResponse(review)
	}

	return reviewResponses, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string, req *request.CursorRequest) (*response.CursorPaginatedResponse[response.ReviewResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID format %s", ErrValidation, userID)
	}

	return s.listUserReviews(ctx, userUUID, req)
}

func (s *reviewService) GetMyReviews(ctx context.Context, userID uuid.UUID, req *request.CursorRequest) (*response.CursorPaginatedResponse[response.ReviewResponse], error) {
	return s.listUserReviews(ctx, userID, req)
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Existence probe so the caller gets a domain conflict instead of a raw
	// constraint violation in the common case.
	existingReview, err := s.repo.Review.FindByUserAndMovie(ctx, userID, req.TMDBMovieID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	if existingReview != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:           userID,
		TMDBMovieID:      req.TMDBMovieID,
		Rating:           req.Rating,
		Content:          req.Content,
		ContainsSpoilers: req.ContainsSpoilers,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		// The probe is not atomic with the insert; a concurrent create for
		// the same pair lands here via the storage constraint.
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrAlreadyReviewed
		}

		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("tmdb_movie_id", req.TMDBMovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("tmdb_movie_id", req.TMDBMovieID),
		zap.Int("rating", req.Rating),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid review ID format %s", ErrValidation, reviewID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	review, err := s.loadOwnedReview(ctx, reviewUUID, userID)
	if err != nil {
		return nil, err
	}

	// Apply only the fields supplied
	updated := false

	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}

	if req.Content != nil {
		review.Content = req.Content
		updated = true
	}

	if req.ContainsSpoilers != nil && *req.ContainsSpoilers != review.ContainsSpoilers {
		review.ContainsSpoilers = *req.ContainsSpoilers
		updated = true
	}

	if updated {
		if err := s.repo.Review.Update(ctx, review); err != nil {
			s.log.Error("Failed to update review",
				zap.Error(err),
				zap.String("review_id", reviewID),
			)
			return nil, fmt.Errorf("update review: %w", err)
		}

		s.log.Info("Review updated",
			zap.String("review_id", reviewID),
			zap.String("user_id", userID.String()),
		)
	}

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("%w: invalid review ID format %s", ErrValidation, reviewID)
	}

	review, err := s.loadOwnedReview(ctx, reviewUUID, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
		zap.Int64("tmdb_movie_id", review.TMDBMovieID),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) listUserReviews(ctx context.Context, userID uuid.UUID, req *request.CursorRequest) (*response.CursorPaginatedResponse[response.ReviewResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List reviews validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	var cursor *uuid.UUID
	if req.Cursor != nil {
		cursorUUID, err := uuid.Parse(*req.Cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid cursor %s", ErrValidation, *req.Cursor)
		}
		cursor = &cursorUUID
	}

	limit := utils.ClampLimit(req.Limit)

	// Fetch one extra row to learn whether a next page exists.
	reviews, err := s.repo.Review.FindByUserID(ctx, userID, cursor, limit+1)
	if err != nil {
		s.log.Error("Failed to get user reviews",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	page := utils.NewCursorPage(reviewResponses, limit, func(r response.ReviewResponse) string {
		return r.ID
	})

	return response.NewCursorPaginatedResponse(page), nil
}

// loadOwnedReview answers ErrNotOwner for both a missing review and a
// foreign one, on purpose.
func (s *reviewService) loadOwnedReview(ctx context.Context, reviewID, userID uuid.UUID) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}

	if review == nil || review.UserID != userID {
		return nil, ErrNotOwner
	}

	return review, nil
}
